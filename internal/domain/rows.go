package domain

import (
	"fmt"
	"math"
	"time"
)

// DecodeSessionRow converts positional values (Date, Title, Author,
// TotalMinutesRead) into a RawSessionRow. row is the 1-based position
// used in error messages.
func DecodeSessionRow(row int, values []any) (RawSessionRow, error) {
	if len(values) != 4 {
		return RawSessionRow{}, malformed(row, "", "expected 4 columns, got %d", len(values))
	}

	date, err := dayValue(row, "date", values[0])
	if err != nil {
		return RawSessionRow{}, err
	}
	title, err := requiredString(row, "title", values[1])
	if err != nil {
		return RawSessionRow{}, err
	}
	author, err := optionalString(row, "author", values[2])
	if err != nil {
		return RawSessionRow{}, err
	}
	minutes, err := minutesValue(row, values[3])
	if err != nil {
		return RawSessionRow{}, err
	}

	return RawSessionRow{Date: date, Title: title, Author: author, Minutes: minutes}, nil
}

// DecodeNoteRow converts positional values (Title, DateCreated, Text,
// Annotation, Type, DateString) into a RawNoteRow.
func DecodeNoteRow(row int, values []any) (RawNoteRow, error) {
	if len(values) != 6 {
		return RawNoteRow{}, malformed(row, "", "expected 6 columns, got %d", len(values))
	}

	title, err := requiredString(row, "title", values[0])
	if err != nil {
		return RawNoteRow{}, err
	}
	created, err := timestampValue(row, "date_created", values[1])
	if err != nil {
		return RawNoteRow{}, err
	}
	text, err := optionalString(row, "text", values[2])
	if err != nil {
		return RawNoteRow{}, err
	}
	annotation, err := optionalString(row, "annotation", values[3])
	if err != nil {
		return RawNoteRow{}, err
	}
	tag, err := requiredString(row, "type", values[4])
	if err != nil {
		return RawNoteRow{}, err
	}
	localized, err := optionalString(row, "date_string", values[5])
	if err != nil {
		return RawNoteRow{}, err
	}

	return RawNoteRow{
		Title:         title,
		ISODate:       created,
		Text:          text,
		Annotation:    annotation,
		TypeTag:       tag,
		LocalizedDate: localized,
	}, nil
}

func optionalString(row int, field string, v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", malformed(row, field, "expected text, got %T", v)
	}
}

func requiredString(row int, field string, v any) (string, error) {
	s, err := optionalString(row, field, v)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", malformed(row, field, "required")
	}
	return s, nil
}

func timestampValue(row int, field string, v any) (time.Time, error) {
	if t, ok := v.(time.Time); ok {
		return t, nil
	}
	s, err := requiredString(row, field, v)
	if err != nil {
		return time.Time{}, err
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return time.Time{}, malformed(row, field, "%v", err)
	}
	return t, nil
}

func dayValue(row int, field string, v any) (time.Time, error) {
	t, err := timestampValue(row, field, v)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

func minutesValue(row int, v any) (float64, error) {
	var m float64
	switch n := v.(type) {
	case float64:
		m = n
	case int64:
		m = float64(n)
	case int:
		m = float64(n)
	case nil:
		return 0, malformed(row, "minutes", "required")
	default:
		return 0, malformed(row, "minutes", "expected number, got %T", v)
	}
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, malformed(row, "minutes", "not a finite number")
	}
	return m, nil
}

// ValidateSessionRow checks an already-typed row for the fields a pass needs.
func ValidateSessionRow(row int, r RawSessionRow) error {
	if r.Date.IsZero() {
		return malformed(row, "date", "required")
	}
	if r.Title == "" {
		return malformed(row, "title", "required")
	}
	if math.IsNaN(r.Minutes) || math.IsInf(r.Minutes, 0) {
		return malformed(row, "minutes", "not a finite number")
	}
	return nil
}

// ValidateNoteRow checks an already-typed note row and resolves its type.
func ValidateNoteRow(row int, r RawNoteRow) (NoteType, error) {
	if r.Title == "" {
		return "", malformed(row, "title", "required")
	}
	t, err := ParseNoteType(r.TypeTag)
	if err != nil {
		return "", malformed(row, "type", "%v", err)
	}
	return t, nil
}

// String renders a session row for logs and test failures.
func (r RawSessionRow) String() string {
	return fmt.Sprintf("%s %q %.1fm", FormatDay(r.Date), r.Title, r.Minutes)
}
