package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRow indicates a source row is missing a required field
	// or carries a value of the wrong type. It fails the whole pass.
	ErrMalformedRow = errors.New("malformed row")

	// ErrSourceUnavailable indicates the snapshot could not supply rows.
	ErrSourceUnavailable = errors.New("snapshot source unavailable")

	// ErrEmptyPalette indicates a palette with no colors.
	ErrEmptyPalette = errors.New("palette has no colors")

	// ErrInvalidPalette indicates mismatched or blank palette entries.
	ErrInvalidPalette = errors.New("invalid palette")
)

// RowError reports which row and field made a pass fail.
type RowError struct {
	Row    int
	Field  string
	Reason string
}

func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Reason)
}

// Unwrap lets callers match any RowError with errors.Is(err, ErrMalformedRow).
func (e *RowError) Unwrap() error {
	return ErrMalformedRow
}

func malformed(row int, field, format string, args ...any) error {
	return &RowError{Row: row, Field: field, Reason: fmt.Sprintf(format, args...)}
}
