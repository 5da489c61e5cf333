package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/alexanderramin/readcal/internal/domain"
	_ "modernc.org/sqlite"
)

// RequiredTables are the snapshot tables the row sources read from.
var RequiredTables = []string{"Analytics", "Bookmark"}

// OpenSnapshot opens an e-reader snapshot database read-only.
// The file must exist and contain every table in RequiredTables; any
// failure wraps domain.ErrSourceUnavailable.
func OpenSnapshot(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("opening snapshot: no path given: %w", domain.ErrSourceUnavailable)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot %s: %v: %w", path, err, domain.ErrSourceUnavailable)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening snapshot %s: is a directory: %w", path, domain.ErrSourceUnavailable)
	}

	dsn := (&url.URL{Scheme: "file", Path: path, RawQuery: "mode=ro"}).String()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot %s: %v: %w", path, err, domain.ErrSourceUnavailable)
	}

	if err := verifyTables(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening snapshot %s: %w", path, err)
	}

	return db, nil
}

// verifyTables fails when the file is not SQLite or lacks a required table.
func verifyTables(ctx context.Context, q Querier) error {
	for _, table := range RequiredTables {
		var name string
		err := q.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("missing table %s: %w", table, domain.ErrSourceUnavailable)
		}
		if err != nil {
			return fmt.Errorf("reading schema: %v: %w", err, domain.ErrSourceUnavailable)
		}
	}
	return nil
}
