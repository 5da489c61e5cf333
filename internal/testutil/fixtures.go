package testutil

import (
	"time"

	"github.com/alexanderramin/readcal/internal/domain"
)

// MustDay parses a YYYY-MM-DD string and panics on bad input.
func MustDay(s string) time.Time {
	d, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MustTimestamp parses a snapshot timestamp and panics on bad input.
func MustTimestamp(s string) time.Time {
	t, err := domain.ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Session row options
type SessionRowOption func(*domain.RawSessionRow)

func WithAuthor(a string) SessionRowOption {
	return func(r *domain.RawSessionRow) {
		r.Author = a
	}
}

// NewSessionRow builds a session row for date (YYYY-MM-DD), title and minutes.
// Author defaults to "Author".
func NewSessionRow(date, title string, minutes float64, opts ...SessionRowOption) domain.RawSessionRow {
	r := domain.RawSessionRow{
		Date:    MustDay(date),
		Title:   title,
		Author:  "Author",
		Minutes: minutes,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Note row options
type NoteRowOption func(*domain.RawNoteRow)

func WithNoteType(t domain.NoteType) NoteRowOption {
	return func(r *domain.RawNoteRow) {
		r.TypeTag = string(t)
	}
}

func WithAnnotation(a string) NoteRowOption {
	return func(r *domain.RawNoteRow) {
		r.Annotation = a
	}
}

func WithCreated(ts string) NoteRowOption {
	return func(r *domain.RawNoteRow) {
		r.ISODate = MustTimestamp(ts)
		r.LocalizedDate = domain.FormatDay(r.ISODate)
	}
}

// NewNoteRow builds a highlight note row for title with the given text.
func NewNoteRow(title, text string, opts ...NoteRowOption) domain.RawNoteRow {
	created := MustTimestamp("2024-01-01T09:30:00")
	r := domain.RawNoteRow{
		Title:         title,
		ISODate:       created,
		Text:          text,
		TypeTag:       string(domain.NoteHighlight),
		LocalizedDate: domain.FormatDay(created),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
