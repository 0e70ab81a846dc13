package db

import (
	"context"
	"database/sql"
)

// Querier is the subset of database/sql shared by *sql.DB, *sql.Tx and *DB.
// Repositories are built over it so the same repository code runs standalone
// or inside an enclosing transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
	_ Querier = (*DB)(nil)
)
