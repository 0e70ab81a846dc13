package gateway

import "github.com/gamevault/pensopay/internal/models"

// paymentPayload is the raw payment object returned by the gateway
type paymentPayload struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	State       string `json:"state"`
	Currency    string `json:"currency"`
	Link        string `json:"link"`
	Reference   string `json:"reference"`
	Facilitator string `json:"facilitator"`
	Amount      int64  `json:"amount"`
	Captured    bool   `json:"captured"`
	Refunded    bool   `json:"refunded"`
	Autocapture bool   `json:"autocapture"`
	Testmode    bool   `json:"testmode"`
}

// PaymentResponse is a typed view over one gateway payment payload. It is
// transient and never persisted; ledger entries copy the fields they need.
type PaymentResponse struct {
	payload     paymentPayload
	successURL  string
	cancelURL   string
	callbackURL string
}

func newPaymentResponse(payload paymentPayload, successURL, cancelURL, callbackURL string) *PaymentResponse {
	return &PaymentResponse{
		payload:     payload,
		successURL:  successURL,
		cancelURL:   cancelURL,
		callbackURL: callbackURL,
	}
}

// PaymentFields are the raw fields of one gateway payment, for building a
// PaymentResponse outside the client (fakes in tests, pre-decoded payloads).
type PaymentFields struct {
	ID          string
	State       models.PaymentState
	Currency    string
	Link        string
	Reference   string
	Facilitator string
	SuccessURL  string
	CancelURL   string
	CallbackURL string
	Amount      int64
	Captured    bool
	Refunded    bool
	Autocapture bool
	Testmode    bool
}

// NewPaymentResponse builds a PaymentResponse from raw fields
func NewPaymentResponse(fields PaymentFields) *PaymentResponse {
	return newPaymentResponse(paymentPayload{
		ID:          fields.ID,
		State:       string(fields.State),
		Amount:      fields.Amount,
		Currency:    fields.Currency,
		Link:        fields.Link,
		Reference:   fields.Reference,
		Captured:    fields.Captured,
		Refunded:    fields.Refunded,
		Autocapture: fields.Autocapture,
		Testmode:    fields.Testmode,
		Facilitator: fields.Facilitator,
	}, fields.SuccessURL, fields.CancelURL, fields.CallbackURL)
}

// ID returns the gateway payment id, used as the ledger reference
func (r *PaymentResponse) ID() string {
	return r.payload.ID
}

// State returns the raw payment state reported by the gateway
func (r *PaymentResponse) State() models.PaymentState {
	return models.PaymentState(r.payload.State)
}

// Amount returns the payment amount in minor units
func (r *PaymentResponse) Amount() int64 {
	return r.payload.Amount
}

// Link returns the hosted checkout URL the customer is redirected to
func (r *PaymentResponse) Link() string {
	return r.payload.Link
}

// Reference returns the gateway's own transaction reference
func (r *PaymentResponse) Reference() string {
	return r.payload.Reference
}

// Captured reports whether the payment has been captured
func (r *PaymentResponse) Captured() bool {
	return r.payload.Captured
}

// Refunded reports whether the payment has been refunded
func (r *PaymentResponse) Refunded() bool {
	return r.payload.Refunded
}

// IsAutoCapture reports whether the gateway captures automatically on
// authorization.
func (r *PaymentResponse) IsAutoCapture() bool {
	return r.payload.Autocapture
}

// IsTestMode reports whether this is a test payment
func (r *PaymentResponse) IsTestMode() bool {
	return r.payload.Testmode
}

// Facilitator returns the payment facilitator tag, if any
func (r *PaymentResponse) Facilitator() string {
	return r.payload.Facilitator
}

// SuccessURL returns the success URL the payment was created with
func (r *PaymentResponse) SuccessURL() string {
	return r.successURL
}

// CancelURL returns the cancel URL the payment was created with
func (r *PaymentResponse) CancelURL() string {
	return r.cancelURL
}

// CallbackURL returns the callback URL the payment was created with
func (r *PaymentResponse) CallbackURL() string {
	return r.callbackURL
}

// IsSuccessful reports whether the gateway accepted the payment: every state
// except the terminal negative ones. A pending payment produced a valid
// intent and counts as successful, but does not place the order.
func (r *PaymentResponse) IsSuccessful() bool {
	switch r.State() {
	case models.PaymentStateRejected, models.PaymentStateCanceled:
		return false
	default:
		return true
	}
}

// MarksPlaced reports whether this state completes checkout for the order.
// Merely pending payments do not; the authorized webhook arriving later does.
func (r *PaymentResponse) MarksPlaced() bool {
	switch r.State() {
	case models.PaymentStateAuthorized, models.PaymentStateCaptured, models.PaymentStateRefunded:
		return true
	default:
		return false
	}
}
