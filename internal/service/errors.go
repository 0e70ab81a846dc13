package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeOrderConflict       = "order_conflict"
	ErrCodeGatewayRejected     = "gateway_rejected"
	ErrCodeTransportFailure    = "transport_failure"
	ErrCodeUnknownReference    = "unknown_reference"
	ErrCodeUnmappedState       = "unmapped_state"
	ErrCodeUnmappedEvent       = "unmapped_event"
	ErrCodeCartNotFound        = "cart_not_found"
	ErrCodeOrderNotFound       = "order_not_found"
	ErrCodeTransactionNotFound = "transaction_not_found"
	ErrCodeInvalidAmount       = "invalid_amount"
	ErrCodeInvalidCurrency     = "invalid_currency"
	ErrCodeInvalidReference    = "invalid_reference"
	ErrCodeAlreadyRecorded     = "already_recorded"
	ErrCodeInternalError       = "internal_error"
)
