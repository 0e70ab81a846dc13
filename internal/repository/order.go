// Package repository provides data access layer implementations for the
// payment reconciliation service.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gamevault/pensopay/internal/db"
	"github.com/gamevault/pensopay/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindPlacedByCart(ctx context.Context, cartID uuid.UUID) (*models.Order, error)
	CreateFromCart(ctx context.Context, cart *models.Cart, reference string, totalAmount int64, currency string) (*models.Order, error)
	MarkPlaced(ctx context.Context, orderID uuid.UUID, placedAt time.Time) (bool, error)
}

// orderRepository implements OrderRepository
type orderRepository struct {
	q db.Querier
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(q db.Querier) OrderRepository {
	return &orderRepository{q: q}
}

const orderColumns = `id, cart_id, reference, total_amount, currency, placed_at, created_at`

func scanOrder(row *sql.Row) (*models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID,
		&order.CartID,
		&order.Reference,
		&order.TotalAmount,
		&order.Currency,
		&order.PlacedAt,
		&order.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	return &order, nil
}

// FindByID retrieves an order by its UUID
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return scanOrder(r.q.QueryRowContext(ctx, query, id))
}

// FindByIDForUpdate retrieves an order by id and locks its row for the
// duration of the enclosing transaction. This is the per-order mutual
// exclusion scope serializing placed_at flips against concurrent producers.
func (r *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return scanOrder(r.q.QueryRowContext(ctx, query, id))
}

// FindPlacedByCart retrieves the placed order belonging to a cart, if any
func (r *orderRepository) FindPlacedByCart(ctx context.Context, cartID uuid.UUID) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE cart_id = $1 AND placed_at IS NOT NULL`
	return scanOrder(r.q.QueryRowContext(ctx, query, cartID))
}

// CreateFromCart creates a new order for the cart. A cart that already owns a
// placed order cannot start another checkout; that case returns
// models.ErrCartOrderConflict.
func (r *orderRepository) CreateFromCart(ctx context.Context, cart *models.Cart, reference string, totalAmount int64, currency string) (*models.Order, error) {
	var exists bool
	check := `SELECT EXISTS (SELECT 1 FROM orders WHERE cart_id = $1 AND placed_at IS NOT NULL)`
	if err := r.q.QueryRowContext(ctx, check, cart.ID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check cart orders: %w", err)
	}
	if exists {
		return nil, models.ErrCartOrderConflict
	}

	order := &models.Order{
		ID:          uuid.New(),
		CartID:      cart.ID,
		Reference:   reference,
		TotalAmount: totalAmount,
		Currency:    currency,
		CreatedAt:   time.Now(),
	}

	insert := `
		INSERT INTO orders (id, cart_id, reference, total_amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.q.ExecContext(ctx, insert,
		order.ID, order.CartID, order.Reference, order.TotalAmount, order.Currency, order.CreatedAt,
	); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, models.ErrCartOrderConflict
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// MarkPlaced sets placed_at on the order if it is still unset. Returns true
// when this call performed the flip, false when the order was already placed.
func (r *orderRepository) MarkPlaced(ctx context.Context, orderID uuid.UUID, placedAt time.Time) (bool, error) {
	query := `UPDATE orders SET placed_at = $2 WHERE id = $1 AND placed_at IS NULL`

	result, err := r.q.ExecContext(ctx, query, orderID, placedAt)
	if err != nil {
		return false, fmt.Errorf("failed to mark order placed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
