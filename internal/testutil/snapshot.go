package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// snapshotSchema mirrors the two e-reader tables the row sources query.
const snapshotSchema = `
	CREATE TABLE Analytics (
		Id INTEGER PRIMARY KEY AUTOINCREMENT,
		Date TEXT,
		Title TEXT,
		Author TEXT,
		ReadingTime INTEGER
	);
	CREATE TABLE Bookmark (
		BookmarkID TEXT PRIMARY KEY,
		Title TEXT,
		DateCreated TEXT,
		Text TEXT,
		Annotation TEXT,
		Type TEXT
	);
`

// AnalyticsRow is one raw reading-time record; Seconds is summed per
// (Date, Title) by the session query.
type AnalyticsRow struct {
	Date    string
	Title   string
	Author  any
	Seconds int
}

// BookmarkRow is one raw annotation record. Nil fields are stored as NULL.
type BookmarkRow struct {
	ID          string
	Title       any
	DateCreated any
	Text        any
	Annotation  any
	Type        string
}

// Snapshot collects rows to write into a temporary snapshot file.
type Snapshot struct {
	Reads     []AnalyticsRow
	Bookmarks []BookmarkRow
	// SkipBookmarkTable leaves the Bookmark table out of the schema.
	SkipBookmarkTable bool
}

// NewSnapshotFile writes s into a fresh SQLite file under t.TempDir and
// returns its path.
func NewSnapshotFile(t *testing.T, s Snapshot) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "KoboReader.sqlite")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create snapshot: %v", err)
	}
	defer db.Close()

	schema := snapshotSchema
	if s.SkipBookmarkTable {
		schema = `CREATE TABLE Analytics (Id INTEGER PRIMARY KEY AUTOINCREMENT, Date TEXT, Title TEXT, Author TEXT, ReadingTime INTEGER);`
	}
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create snapshot schema: %v", err)
	}

	for _, r := range s.Reads {
		if _, err := db.Exec(`INSERT INTO Analytics (Date, Title, Author, ReadingTime) VALUES (?, ?, ?, ?)`,
			r.Date, r.Title, r.Author, r.Seconds); err != nil {
			t.Fatalf("failed to insert analytics row: %v", err)
		}
	}
	for i, b := range s.Bookmarks {
		id := b.ID
		if id == "" {
			id = fmt.Sprintf("bm-%d", i)
		}
		if _, err := db.Exec(`INSERT INTO Bookmark (BookmarkID, Title, DateCreated, Text, Annotation, Type) VALUES (?, ?, ?, ?, ?, ?)`,
			id, b.Title, b.DateCreated, b.Text, b.Annotation, b.Type); err != nil {
			t.Fatalf("failed to insert bookmark row: %v", err)
		}
	}
	return path
}
