package repository

import (
	"context"

	"github.com/alexanderramin/readcal/internal/db"
	"github.com/alexanderramin/readcal/internal/domain"
)

// noteRowsQuery selects annotations worth showing: anything with text, plus
// bare notes and bookmarks. Empty dog-ears and device-specific types such
// as handwritten markup are left out.
const noteRowsQuery = `SELECT Title, DateCreated, Text, Annotation, Type,
		strftime('%Y-%m-%d', DateCreated, 'localtime') AS DateString
	FROM Bookmark
	WHERE (Text IS NOT NULL OR Type != 'dogear')
	  AND lower(Type) IN ('highlight', 'note', 'bookmark', 'dogear')
	ORDER BY Title, DateString ASC, DateCreated ASC`

// SQLiteNoteRepo implements NoteRowSource over a snapshot database.
type SQLiteNoteRepo struct {
	db db.Querier
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(q db.Querier) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: q}
}

func (r *SQLiteNoteRepo) NoteRows(ctx context.Context) ([]domain.RawNoteRow, error) {
	return queryDecoded(ctx, r.db, "bookmarks", noteRowsQuery, 6, domain.DecodeNoteRow)
}
