package activity

import (
	"fmt"

	"github.com/alexanderramin/readcal/internal/domain"
)

// mergeGapDays is the largest day gap that still continues a session.
const mergeGapDays = 1

// Result is the output of one aggregation pass over a snapshot.
type Result struct {
	Events []domain.MergedSessionEvent
	Books  []domain.BookAggregate
	Index  domain.BookIndexMap
}

// Aggregate folds session rows, in order, into merged calendar events and
// per-book rollups. Any malformed row fails the pass and no result is
// returned.
func Aggregate(rows []domain.RawSessionRow, palette domain.Palette) (*Result, error) {
	colors, err := NewColorCycle(palette)
	if err != nil {
		return nil, fmt.Errorf("aggregating sessions: %w", err)
	}

	events := make([]domain.MergedSessionEvent, 0)
	books := make([]domain.BookAggregate, 0)
	lastEvent := make(map[string]int)
	bookPos := make(map[string]int)

	for i, row := range rows {
		if err := domain.ValidateSessionRow(i+1, row); err != nil {
			return nil, fmt.Errorf("aggregating sessions: %w", err)
		}
		minutes := row.Minutes
		if minutes < 0 {
			minutes = 0
		}
		pair := colors.Assign(row.Title)

		if idx, ok := lastEvent[row.Title]; ok && continuesSession(events[idx], row) {
			events[idx].Minutes += minutes
			events[idx].End = row.Date
		} else {
			lastEvent[row.Title] = len(events)
			events = append(events, domain.MergedSessionEvent{
				Start:           row.Date,
				End:             row.Date,
				Title:           row.Title,
				Author:          row.Author,
				Minutes:         minutes,
				BackgroundColor: pair.Background,
				BorderColor:     pair.Border,
			})
		}

		pos, ok := bookPos[row.Title]
		if !ok {
			pos = len(books)
			bookPos[row.Title] = pos
			books = append(books, domain.BookAggregate{
				Title:     row.Title,
				Author:    row.Author,
				StartDate: row.Date,
				Color:     pair.Background,
				Border:    pair.Border,
			})
		}
		book := &books[pos]
		book.TotalMinutes += minutes
		book.DaysCount++
		book.LastDate = row.Date
		book.DailyHistory = append(book.DailyHistory, domain.DailyReading{Date: row.Date, Minutes: minutes})
	}

	for i := range events {
		events[i].DisplayEnd = events[i].End.AddDate(0, 0, 1)
		events[i].TimeLabel = FormatDuration(events[i].Minutes)
	}

	return &Result{
		Events: events,
		Books:  books,
		Index:  BuildIndexMap(books),
	}, nil
}

// continuesSession reports whether row extends ev: the row falls on the
// event's last day or the day after it.
func continuesSession(ev domain.MergedSessionEvent, row domain.RawSessionRow) bool {
	gap := domain.DaysBetween(ev.End, row.Date)
	return gap >= 0 && gap <= mergeGapDays
}
