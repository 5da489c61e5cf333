package service

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/readcal/internal/db"
	"github.com/alexanderramin/readcal/internal/repository"
)

type sqliteSnapshot struct {
	*repository.SQLiteReadingRepo
	*repository.SQLiteNoteRepo
	db *sql.DB
}

// OpenSQLiteSnapshot is the SourceOpener for on-disk snapshot files.
func OpenSQLiteSnapshot(ctx context.Context, path string) (SnapshotSource, error) {
	database, err := db.OpenSnapshot(ctx, path)
	if err != nil {
		return nil, err
	}
	return &sqliteSnapshot{
		SQLiteReadingRepo: repository.NewSQLiteReadingRepo(database),
		SQLiteNoteRepo:    repository.NewSQLiteNoteRepo(database),
		db:                database,
	}, nil
}

func (s *sqliteSnapshot) Close() error {
	return s.db.Close()
}
