package db

import (
	"context"
	"database/sql"
)

// Querier is the read-only surface the snapshot repositories need. Both
// *sql.DB and *sql.Conn satisfy it, so tests can hand in either.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time verification that *sql.DB and *sql.Conn satisfy Querier.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Conn)(nil)
)
