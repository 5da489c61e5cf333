package domain

import (
	"fmt"
	"strings"
	"time"
)

type NoteType string

const (
	NoteHighlight NoteType = "highlight"
	NoteNote      NoteType = "note"
	NoteBookmark  NoteType = "bookmark"
	NoteDogear    NoteType = "dogear"
)

// ValidNoteTypes is the canonical set of accepted note type tags.
var ValidNoteTypes = map[NoteType]bool{
	NoteHighlight: true, NoteNote: true, NoteBookmark: true, NoteDogear: true,
}

// ParseNoteType normalizes a raw type tag from the snapshot.
func ParseNoteType(tag string) (NoteType, error) {
	t := NoteType(strings.ToLower(strings.TrimSpace(tag)))
	if !ValidNoteTypes[t] {
		return "", fmt.Errorf("unknown note type %q", tag)
	}
	return t, nil
}

// RawNoteRow is one annotation row supplied by the snapshot.
type RawNoteRow struct {
	Title         string
	ISODate       time.Time
	Text          string
	Annotation    string
	TypeTag       string
	LocalizedDate string
}

// NoteRecord is an annotation attached to a book.
type NoteRecord struct {
	Text          string
	Annotation    string
	LocalizedDate string
	Type          NoteType
	ISODate       time.Time
}
