package activity

import (
	"time"

	"github.com/alexanderramin/readcal/internal/domain"
)

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// EventsBetween returns the events that overlap [from, to). DisplayEnd is
// exclusive, so an event ending the day before from is left out.
func EventsBetween(events []domain.MergedSessionEvent, from, to time.Time) []domain.MergedSessionEvent {
	var out []domain.MergedSessionEvent
	for _, ev := range events {
		if ev.Start.Before(to) && ev.DisplayEnd.After(from) {
			out = append(out, ev)
		}
	}
	return out
}

// DefaultWindow picks the months to show when none is requested: the span
// of `months` whole months ending with the month of the latest event end.
// ok is false when there are no events.
func DefaultWindow(events []domain.MergedSessionEvent, months int) (from, to time.Time, ok bool) {
	if len(events) == 0 {
		return time.Time{}, time.Time{}, false
	}
	if months < 1 {
		months = 1
	}
	latest := events[0].End
	for _, ev := range events[1:] {
		if ev.End.After(latest) {
			latest = ev.End
		}
	}
	to = MonthStart(latest).AddDate(0, 1, 0)
	from = to.AddDate(0, -months, 0)
	return from, to, true
}
