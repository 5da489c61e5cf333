package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/readcal/internal/db"
	"github.com/alexanderramin/readcal/internal/domain"
)

// queryDecoded runs query and decodes each result row of cols columns. The
// decoder receives the 1-based row number.
// Driver failures wrap domain.ErrSourceUnavailable; decode failures are
// returned as-is so callers can match domain.ErrMalformedRow.
func queryDecoded[T any](ctx context.Context, q db.Querier, what, query string, cols int, decode func(row int, values []any) (T, error)) ([]T, error) {
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %v: %w", what, err, domain.ErrSourceUnavailable)
	}
	defer rows.Close()

	var out []T
	n := 0
	for rows.Next() {
		n++
		values, err := scanAny(rows, cols)
		if err != nil {
			return nil, fmt.Errorf("scanning %s row %d: %v: %w", what, n, err, domain.ErrSourceUnavailable)
		}
		v, err := decode(n, values)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", what, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %v: %w", what, err, domain.ErrSourceUnavailable)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanAny scans cols columns without forcing a Go type, leaving NULLs as
// nil and letting the decoder judge what the driver returned.
func scanAny(s scanner, cols int) ([]any, error) {
	values := make([]any, cols)
	ptrs := make([]any, cols)
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := s.Scan(ptrs...); err != nil {
		return nil, err
	}
	return values, nil
}
