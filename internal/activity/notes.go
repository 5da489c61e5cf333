package activity

import (
	"fmt"

	"github.com/alexanderramin/readcal/internal/domain"
)

// AttachNotes returns a copy of books with each note row appended to the
// book sharing its title, in input order. Rows whose title has no reading
// activity are skipped. books itself is never modified. index must be the
// one built for books; an index of a different length or pointing at a
// different title is an error, even when books is empty.
func AttachNotes(rows []domain.RawNoteRow, books []domain.BookAggregate, index domain.BookIndexMap) ([]domain.BookAggregate, error) {
	if len(index) != len(books) {
		return nil, fmt.Errorf("attaching notes: index has %d titles for %d books", len(index), len(books))
	}

	out := make([]domain.BookAggregate, len(books))
	if len(books) == 0 {
		return out, nil
	}
	for i, b := range books {
		out[i] = b.Clone()
	}

	for i, row := range rows {
		noteType, err := domain.ValidateNoteRow(i+1, row)
		if err != nil {
			return nil, fmt.Errorf("attaching notes: %w", err)
		}
		pos, ok := index[row.Title]
		if !ok {
			continue
		}
		if pos < 0 || pos >= len(out) || out[pos].Title != row.Title {
			return nil, fmt.Errorf("attaching notes: index entry for %q does not match book list", row.Title)
		}
		out[pos].Notes = append(out[pos].Notes, domain.NoteRecord{
			Text:          row.Text,
			Annotation:    row.Annotation,
			LocalizedDate: row.LocalizedDate,
			Type:          noteType,
			ISODate:       row.ISODate,
		})
	}

	return out, nil
}
