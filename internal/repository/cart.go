package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gamevault/pensopay/internal/db"
	"github.com/gamevault/pensopay/internal/models"
	"github.com/google/uuid"
)

// CartRepository defines the interface for cart data access
type CartRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	Create(ctx context.Context, reference string, totalAmount int64, currency string) (*models.Cart, error)
	SetPaymentIntent(ctx context.Context, cartID uuid.UUID, paymentIntent string) error
}

// cartRepository implements CartRepository
type cartRepository struct {
	q db.Querier
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(q db.Querier) CartRepository {
	return &cartRepository{q: q}
}

// FindByID retrieves a cart by its UUID
func (r *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	query := `SELECT id, reference, total_amount, currency, meta, created_at FROM carts WHERE id = $1`

	var cart models.Cart
	var rawMeta []byte
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&cart.ID,
		&cart.Reference,
		&cart.TotalAmount,
		&cart.Currency,
		&rawMeta,
		&cart.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}

	if len(rawMeta) > 0 {
		var meta models.CartMeta
		if err := json.Unmarshal(rawMeta, &meta); err != nil {
			return nil, fmt.Errorf("failed to decode cart meta: %w", err)
		}
		cart.Meta = &meta
	}

	return &cart, nil
}

// Create creates a new cart with its checkout totals
func (r *cartRepository) Create(ctx context.Context, reference string, totalAmount int64, currency string) (*models.Cart, error) {
	cart := &models.Cart{
		ID:          uuid.New(),
		Reference:   reference,
		TotalAmount: totalAmount,
		Currency:    currency,
		CreatedAt:   time.Now(),
	}

	query := `INSERT INTO carts (id, reference, total_amount, currency, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.ExecContext(ctx, query, cart.ID, cart.Reference, cart.TotalAmount, cart.Currency, cart.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	return cart, nil
}

// SetPaymentIntent upserts the payment_intent key in the cart's meta, creating
// the meta container when the cart has none yet. One statement regardless of
// prior meta state.
func (r *cartRepository) SetPaymentIntent(ctx context.Context, cartID uuid.UUID, paymentIntent string) error {
	query := `
		UPDATE carts
		SET meta = COALESCE(meta, '{}'::jsonb) || jsonb_build_object('payment_intent', $2::text)
		WHERE id = $1
	`

	result, err := r.q.ExecContext(ctx, query, cartID, paymentIntent)
	if err != nil {
		return fmt.Errorf("failed to set cart payment intent: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}
