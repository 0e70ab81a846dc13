package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is a merchant order created from a cart at authorize time. The
// checkout flow owns orders; this service only ever sets PlacedAt (once) when
// the first successful authorization-equivalent event arrives.
type Order struct {
	CreatedAt   time.Time  `db:"created_at"`
	PlacedAt    *time.Time `db:"placed_at"`
	Reference   string     `db:"reference"`
	Currency    string     `db:"currency"`
	TotalAmount int64      `db:"total_amount"`
	ID          uuid.UUID  `db:"id"`
	CartID      uuid.UUID  `db:"cart_id"`
}

// Placed reports whether the order has completed checkout from the payment
// perspective.
func (o *Order) Placed() bool {
	return o.PlacedAt != nil
}

// CartMeta is the structured metadata stored on a cart. PaymentIntent holds
// the gateway payment id so later webhooks can be correlated back to the
// checkout that created the payment.
type CartMeta struct {
	PaymentIntent string `json:"payment_intent,omitempty"`
}

// Cart is the checkout cart an order is created from. Reference, total and
// currency are owned by the merchant checkout flow; this service reads them
// when creating the order and writes only Meta.PaymentIntent.
type Cart struct {
	CreatedAt   time.Time `db:"created_at"`
	Meta        *CartMeta `db:"meta"`
	Reference   string    `db:"reference"`
	Currency    string    `db:"currency"`
	TotalAmount int64     `db:"total_amount"`
	ID          uuid.UUID `db:"id"`
}
