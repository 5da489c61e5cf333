package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/readcal/internal/activity"
	"github.com/alexanderramin/readcal/internal/domain"
)

// FormatBookList renders one row per book with its reading totals.
func FormatBookList(books []domain.BookAggregate) string {
	if len(books) == 0 {
		return "No books found.\n"
	}

	headers := []string{"", "TITLE", "AUTHOR", "TIME", "DAYS", "FIRST READ", "LAST READ", "NOTES"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft, AlignLeft, AlignRight}
	rows := make([][]string, 0, len(books))
	var total float64
	for _, bk := range books {
		total += bk.TotalMinutes
		rows = append(rows, []string{
			BookChip(bk.Color, bk.Border),
			BookTitle(Truncate(bk.Title, 40), bk.Border),
			Dim(Truncate(bk.Author, 24)),
			activity.FormatDuration(bk.TotalMinutes),
			fmt.Sprintf("%d", bk.DaysCount),
			ShortDate(bk.StartDate),
			ShortDate(bk.LastDate),
			fmt.Sprintf("%d", len(bk.Notes)),
		})
	}

	title := fmt.Sprintf("Books · %d · %s", len(books), activity.FormatDuration(total))
	return RenderBox(title, RenderAlignedTable(headers, rows, align))
}

// FormatBookDetail renders a single book: totals, day-by-day history and
// its annotations.
func FormatBookDetail(bk domain.BookAggregate) string {
	var b strings.Builder

	b.WriteString(BookChip(bk.Color, bk.Border) + " " + BookTitle(bk.Title, bk.Border) + "\n")
	if bk.Author != "" {
		b.WriteString(Dim("by "+bk.Author) + "\n")
	}
	b.WriteString("\n")

	avg := 0.0
	if bk.DaysCount > 0 {
		avg = bk.TotalMinutes / float64(bk.DaysCount)
	}
	stats := [][]string{
		{"Total", activity.FormatDuration(bk.TotalMinutes)},
		{"Days read", fmt.Sprintf("%d", bk.DaysCount)},
		{"Per day", activity.FormatDuration(avg)},
		{"First read", ShortDate(bk.StartDate)},
		{"Last read", ShortDate(bk.LastDate)},
	}
	for _, s := range stats {
		b.WriteString("  " + Dim(fmt.Sprintf("%-12s", s[0])) + " " + s[1] + "\n")
	}

	if len(bk.DailyHistory) > 0 {
		b.WriteString("\n" + Header("History") + "\n")
		var max float64
		for _, d := range bk.DailyHistory {
			if d.Minutes > max {
				max = d.Minutes
			}
		}
		for _, d := range bk.DailyHistory {
			b.WriteString(fmt.Sprintf("  %s  %s %s\n",
				domain.FormatDay(d.Date),
				RenderBar(d.Minutes, max, 20, bk.Border),
				activity.FormatDuration(d.Minutes)))
		}
	}

	b.WriteString("\n" + Header(fmt.Sprintf("Notes (%d)", len(bk.Notes))) + "\n")
	if len(bk.Notes) == 0 {
		b.WriteString(Dim("  No annotations.") + "\n")
	} else {
		b.WriteString(formatNoteList(bk.Notes))
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}
