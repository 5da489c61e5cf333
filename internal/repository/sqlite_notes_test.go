package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/readcal/internal/domain"
	"github.com/alexanderramin/readcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRepo_FiltersAndOrders(t *testing.T) {
	database := openSnapshot(t, testutil.Snapshot{
		Bookmarks: []testutil.BookmarkRow{
			{Title: "Emma", DateCreated: "2024-01-03T10:00:00.000", Text: "later", Type: "highlight"},
			{Title: "Dune", DateCreated: "2024-01-02T10:00:00.000", Text: "second", Annotation: "why", Type: "note"},
			{Title: "Dune", DateCreated: "2024-01-01T10:00:00.000", Text: "first", Type: "highlight"},
			{Title: "Dune", DateCreated: "2024-01-01T11:00:00.000", Text: nil, Type: "dogear"},
			{Title: "Dune", DateCreated: "2024-01-01T12:00:00.000", Text: "folded", Type: "dogear"},
			{Title: "Dune", DateCreated: "2024-01-01T13:00:00.000", Text: nil, Type: "markup"},
		},
	})

	rows, err := NewSQLiteNoteRepo(database).NoteRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Dune", rows[0].Title)
	assert.Equal(t, "first", rows[0].Text)
	assert.Equal(t, "folded", rows[1].Text)
	assert.Equal(t, "dogear", rows[1].TypeTag)
	assert.Equal(t, "second", rows[2].Text)
	assert.Equal(t, "why", rows[2].Annotation)
	assert.Equal(t, "Emma", rows[3].Title)

	assert.Equal(t, testutil.MustTimestamp("2024-01-01T10:00:00"), rows[0].ISODate)
	assert.NotEmpty(t, rows[0].LocalizedDate)
}

func TestNoteRepo_MissingTitleIsMalformed(t *testing.T) {
	database := openSnapshot(t, testutil.Snapshot{
		Bookmarks: []testutil.BookmarkRow{{Title: nil, DateCreated: "2024-01-01T10:00:00", Text: "x", Type: "highlight"}},
	})

	_, err := NewSQLiteNoteRepo(database).NoteRows(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedRow)
}

func TestNoteRepo_Empty(t *testing.T) {
	database := openSnapshot(t, testutil.Snapshot{})

	rows, err := NewSQLiteNoteRepo(database).NoteRows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
