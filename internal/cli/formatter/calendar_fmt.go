package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/readcal/internal/activity"
	"github.com/alexanderramin/readcal/internal/domain"
)

// FormatCalendar renders merged reading sessions grouped by the month they
// start in, covering [from, to). Sessions that began before from are shown
// under the first month.
func FormatCalendar(events []domain.MergedSessionEvent, from, to time.Time) string {
	visible := activity.EventsBetween(events, from, to)
	if len(visible) == 0 {
		return fmt.Sprintf("No reading between %s and %s.\n",
			ShortDate(from), ShortDate(to.AddDate(0, 0, -1)))
	}

	var b strings.Builder
	headers := []string{"", "DAYS", "TITLE", "AUTHOR", "TIME"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight}

	for month := from; month.Before(to); month = month.AddDate(0, 1, 0) {
		next := month.AddDate(0, 1, 0)
		var rows [][]string
		var total float64
		for _, ev := range visible {
			bucket := ev.Start
			if bucket.Before(from) {
				bucket = from
			}
			if bucket.Before(month) || !bucket.Before(next) {
				continue
			}
			total += ev.Minutes
			rows = append(rows, []string{
				BookChip(ev.BackgroundColor, ev.BorderColor),
				DateRange(ev.Start, ev.End),
				BookTitle(Truncate(ev.Title, 40), ev.BorderColor),
				Dim(Truncate(ev.Author, 24)),
				ev.TimeLabel,
			})
		}
		if len(rows) == 0 {
			continue
		}

		title := fmt.Sprintf("%s · %d %s · %s", month.Format("January 2006"),
			len(rows), Plural(len(rows), "session", "sessions"), activity.FormatDuration(total))
		b.WriteString(RenderBox(title, RenderAlignedTable(headers, rows, align)))
	}

	return b.String()
}
