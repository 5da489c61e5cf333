package repository

import (
	"context"

	"github.com/alexanderramin/readcal/internal/db"
	"github.com/alexanderramin/readcal/internal/domain"
)

// sessionRowsQuery groups raw reading seconds into whole-day minutes per
// title, dropping days with under a minute of reading.
const sessionRowsQuery = `SELECT Date, Title, Author,
		CAST(printf('%.1f', SUM(ReadingTime) / 60.0) AS REAL) AS TotalMinutesRead
	FROM Analytics
	GROUP BY Date, Title
	HAVING TotalMinutesRead >= 1
	ORDER BY Date, Title`

// SQLiteReadingRepo implements SessionRowSource over a snapshot database.
type SQLiteReadingRepo struct {
	db db.Querier
}

// NewSQLiteReadingRepo creates a new SQLiteReadingRepo.
func NewSQLiteReadingRepo(q db.Querier) *SQLiteReadingRepo {
	return &SQLiteReadingRepo{db: q}
}

func (r *SQLiteReadingRepo) SessionRows(ctx context.Context) ([]domain.RawSessionRow, error) {
	return queryDecoded(ctx, r.db, "reading analytics", sessionRowsQuery, 4, domain.DecodeSessionRow)
}
