package domain

import "time"

// RawSessionRow is one (day, book) reading total supplied by the snapshot.
type RawSessionRow struct {
	Date    time.Time
	Title   string
	Author  string
	Minutes float64
}

// MergedSessionEvent is a run of same-title reading across adjacent days.
// End is the last day read; DisplayEnd is End plus one day for calendars
// that treat the end date as exclusive.
type MergedSessionEvent struct {
	Start           time.Time
	End             time.Time
	DisplayEnd      time.Time
	Title           string
	Author          string
	Minutes         float64
	BackgroundColor string
	BorderColor     string
	TimeLabel       string
}

// DailyReading is one entry of a book's day-by-day history.
type DailyReading struct {
	Date    time.Time
	Minutes float64
}

// BookAggregate summarizes one title across an entire snapshot.
type BookAggregate struct {
	Title        string
	Author       string
	TotalMinutes float64
	StartDate    time.Time
	LastDate     time.Time
	DaysCount    int
	Color        string
	Border       string
	DailyHistory []DailyReading
	Notes        []NoteRecord
}

// Clone returns a deep copy of the aggregate, including history and notes.
func (b BookAggregate) Clone() BookAggregate {
	out := b
	if b.DailyHistory != nil {
		out.DailyHistory = append([]DailyReading(nil), b.DailyHistory...)
	}
	if b.Notes != nil {
		out.Notes = append([]NoteRecord(nil), b.Notes...)
	}
	return out
}

// BookIndexMap maps a title to its position in the book list of the same pass.
type BookIndexMap map[string]int
