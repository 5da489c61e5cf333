package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSessionRow(t *testing.T) {
	row, err := DecodeSessionRow(1, []any{"2024-01-02", "Dune", "Frank Herbert", 42.5})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), row.Date)
	assert.Equal(t, "Dune", row.Title)
	assert.Equal(t, "Frank Herbert", row.Author)
	assert.Equal(t, 42.5, row.Minutes)
}

func TestDecodeSessionRow_AcceptsDriverVariants(t *testing.T) {
	row, err := DecodeSessionRow(1, []any{
		time.Date(2024, 1, 2, 23, 59, 0, 0, time.FixedZone("X", 9*3600)),
		[]byte("Dune"),
		nil,
		int64(12),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), row.Date)
	assert.Equal(t, "Dune", row.Title)
	assert.Equal(t, "", row.Author)
	assert.Equal(t, 12.0, row.Minutes)
}

func TestDecodeSessionRow_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		field  string
	}{
		{"wrong arity", []any{"2024-01-02", "Dune", "A"}, ""},
		{"null date", []any{nil, "Dune", "A", 1.0}, "date"},
		{"bad date", []any{"yesterday", "Dune", "A", 1.0}, "date"},
		{"null title", []any{"2024-01-02", nil, "A", 1.0}, "title"},
		{"numeric title", []any{"2024-01-02", 7.0, "A", 1.0}, "title"},
		{"numeric author", []any{"2024-01-02", "Dune", int64(3), 1.0}, "author"},
		{"null minutes", []any{"2024-01-02", "Dune", "A", nil}, "minutes"},
		{"text minutes", []any{"2024-01-02", "Dune", "A", "12"}, "minutes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSessionRow(3, tt.values)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRow)

			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, 3, rowErr.Row)
			assert.Equal(t, tt.field, rowErr.Field)
		})
	}
}

func TestDecodeNoteRow(t *testing.T) {
	row, err := DecodeNoteRow(1, []any{"Dune", "2024-01-02T21:10:05.000", "text", nil, "highlight", "2024-01-02"})
	require.NoError(t, err)
	assert.Equal(t, "Dune", row.Title)
	assert.Equal(t, time.Date(2024, 1, 2, 21, 10, 5, 0, time.UTC), row.ISODate)
	assert.Equal(t, "text", row.Text)
	assert.Equal(t, "", row.Annotation)
	assert.Equal(t, "highlight", row.TypeTag)
	assert.Equal(t, "2024-01-02", row.LocalizedDate)
}

func TestDecodeNoteRow_Malformed(t *testing.T) {
	_, err := DecodeNoteRow(1, []any{nil, "2024-01-02", "text", nil, "highlight", nil})
	assert.ErrorIs(t, err, ErrMalformedRow)

	_, err = DecodeNoteRow(1, []any{"Dune", nil, "text", nil, "highlight", nil})
	assert.ErrorIs(t, err, ErrMalformedRow)

	_, err = DecodeNoteRow(1, []any{"Dune", "2024-01-02", "text", nil, nil, nil})
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestParseNoteType(t *testing.T) {
	nt, err := ParseNoteType(" Highlight ")
	require.NoError(t, err)
	assert.Equal(t, NoteHighlight, nt)

	_, err = ParseNoteType("markup")
	assert.Error(t, err)
}
