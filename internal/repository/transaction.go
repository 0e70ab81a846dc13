package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gamevault/pensopay/internal/db"
	"github.com/gamevault/pensopay/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TransactionRepository is the append-only transaction ledger. There is no
// update or delete: corrections are new entries linked to a parent, never
// edits to history.
type TransactionRepository interface {
	Append(ctx context.Context, txn *models.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	FindLatestByReference(ctx context.Context, reference string) (*models.Transaction, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.Transaction, error)
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	q db.Querier
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(q db.Querier) TransactionRepository {
	return &transactionRepository{q: q}
}

const transactionColumns = `id, order_id, parent_transaction_id, success, type, driver,
	       amount, reference, status, notes, card_type, last_four, captured_at, meta, created_at`

// Append inserts one new ledger entry. A second entry for the same
// (reference, status) pair is rejected by the store's unique constraint and
// surfaced as models.ErrDuplicateTransaction so callers can treat replayed
// gateway events as already recorded.
func (r *transactionRepository) Append(ctx context.Context, txn *models.Transaction) error {
	var rawMeta []byte
	if txn.Meta != nil {
		encoded, err := json.Marshal(txn.Meta)
		if err != nil {
			return fmt.Errorf("failed to encode transaction meta: %w", err)
		}
		rawMeta = encoded
	}

	query := `
		INSERT INTO transactions (id, order_id, parent_transaction_id, success, type, driver,
		                          amount, reference, status, notes, card_type, last_four,
		                          captured_at, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.q.ExecContext(ctx, query,
		txn.ID,
		txn.OrderID,
		txn.ParentTransactionID,
		txn.Success,
		txn.Type,
		txn.Driver,
		txn.Amount,
		txn.Reference,
		txn.Status,
		txn.Notes,
		txn.CardType,
		txn.LastFour,
		txn.CapturedAt,
		rawMeta,
		txn.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return models.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	return nil
}

// FindByID retrieves a ledger entry by its UUID
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return scanTransaction(r.q.QueryRowContext(ctx, query, id))
}

// FindLatestByReference retrieves the most recent ledger entry carrying the
// given gateway reference. Webhook ingestion uses this to correlate an event
// back to the order that originated the payment.
func (r *transactionRepository) FindLatestByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE reference = $1
		ORDER BY created_at DESC
		LIMIT 1`
	return scanTransaction(r.q.QueryRowContext(ctx, query, reference))
}

// ListByOrder returns every ledger entry for an order, oldest first
func (r *transactionRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE order_id = $1
		ORDER BY created_at ASC`

	rows, err := r.q.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer func() {
		_ = rows.Close() //nolint:errcheck // nothing useful to do on close failure
	}()

	var txns []*models.Transaction
	for rows.Next() {
		txn, err := scanTransactionRow(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row *sql.Row) (*models.Transaction, error) {
	txn, err := scanTransactionRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return txn, err
}

func scanTransactionRow(row rowScanner) (*models.Transaction, error) {
	var txn models.Transaction
	var rawMeta []byte

	err := row.Scan(
		&txn.ID,
		&txn.OrderID,
		&txn.ParentTransactionID,
		&txn.Success,
		&txn.Type,
		&txn.Driver,
		&txn.Amount,
		&txn.Reference,
		&txn.Status,
		&txn.Notes,
		&txn.CardType,
		&txn.LastFour,
		&txn.CapturedAt,
		&rawMeta,
		&txn.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	if len(rawMeta) > 0 {
		if err := json.Unmarshal(rawMeta, &txn.Meta); err != nil {
			return nil, fmt.Errorf("failed to decode transaction meta: %w", err)
		}
	}

	return &txn, nil
}
