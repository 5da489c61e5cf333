package repository

import (
	"context"

	"github.com/alexanderramin/readcal/internal/domain"
)

// SessionRowSource supplies per-(day, title) reading totals.
type SessionRowSource interface {
	SessionRows(ctx context.Context) ([]domain.RawSessionRow, error)
}

// NoteRowSource supplies annotation rows.
type NoteRowSource interface {
	NoteRows(ctx context.Context) ([]domain.RawNoteRow, error)
}
