package service

import (
	"github.com/gamevault/pensopay/internal/models"
	"github.com/google/uuid"
)

// AuthorizeResult is the outcome of one authorization attempt. Expected
// business failures (conflicting order, rejected payment, transport failure)
// come back here with Success=false rather than as error returns; the caller
// decides how to notify observers.
type AuthorizeResult struct {
	Transaction  *models.Transaction
	Message      string
	Code         string
	RedirectLink string
	OrderID      uuid.UUID
	Success      bool
}

// CaptureResult is the outcome of one capture attempt
type CaptureResult struct {
	Transaction *models.Transaction
	Message     string
	Code        string
	Success     bool
}

// RefundResult is the outcome of one refund attempt
type RefundResult struct {
	Transaction *models.Transaction
	Message     string
	Code        string
	Success     bool
}

// CheckoutURLs are the round-trip URLs handed to the gateway when creating a
// payment. Empty fields are omitted from the outbound payload.
type CheckoutURLs struct {
	SuccessURL  string
	CancelURL   string
	CallbackURL string
}
