package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver identifies the gateway behind every ledger entry in this service.
const Driver = "pensopay"

// TransactionType classifies a ledger entry
type TransactionType string

const (
	TransactionTypeIntent  TransactionType = "intent"
	TransactionTypeCapture TransactionType = "capture"
	TransactionTypeRefund  TransactionType = "refund"
)

// PaymentState is a raw payment state reported by the gateway
type PaymentState string

const (
	PaymentStatePending    PaymentState = "pending"
	PaymentStateAuthorized PaymentState = "authorized"
	PaymentStateCaptured   PaymentState = "captured"
	PaymentStateRefunded   PaymentState = "refunded"
	PaymentStateRejected   PaymentState = "rejected"
	PaymentStateCanceled   PaymentState = "canceled"
)

// Webhook event names delivered by the gateway
const (
	EventPaymentAuthorized = "payment.authorized"
	EventPaymentCaptured   = "payment.captured"
)

// TypeForState maps a gateway payment state to the ledger entry type recorded
// for it. The mapping is total over the recordable states; any other state
// returns ErrUnmappedState, never a silent default.
func TypeForState(state PaymentState) (TransactionType, error) {
	switch state {
	case PaymentStatePending, PaymentStateAuthorized:
		return TransactionTypeIntent, nil
	case PaymentStateCaptured:
		return TransactionTypeCapture, nil
	case PaymentStateRefunded:
		return TransactionTypeRefund, nil
	default:
		return "", ErrUnmappedState
	}
}

// TypeForEvent maps a webhook event name to the ledger entry type recorded
// for it. Unknown events return ErrUnmappedEvent.
func TypeForEvent(event string) (TransactionType, error) {
	switch event {
	case EventPaymentAuthorized:
		return TransactionTypeIntent, nil
	case EventPaymentCaptured:
		return TransactionTypeCapture, nil
	default:
		return "", ErrUnmappedEvent
	}
}

// Transaction is one immutable ledger entry recording a single payment state
// event for an order. Entries are never updated or deleted; later state
// changes become new entries linked to a parent, forming a forest per order.
type Transaction struct {
	CreatedAt           time.Time       `db:"created_at"`
	CapturedAt          *time.Time      `db:"captured_at"`
	ParentTransactionID *uuid.UUID      `db:"parent_transaction_id"`
	Meta                map[string]any  `db:"meta"`
	Type                TransactionType `db:"type"`
	Driver              string          `db:"driver"`
	Reference           string          `db:"reference"`
	Status              string          `db:"status"`
	Notes               string          `db:"notes"`
	CardType            string          `db:"card_type"`
	LastFour            string          `db:"last_four"`
	Amount              int64           `db:"amount"`
	Success             bool            `db:"success"`
	ID                  uuid.UUID       `db:"id"`
	OrderID             uuid.UUID       `db:"order_id"`
}

// IdempotencyKey tracks processed requests to prevent duplicate transactions
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
