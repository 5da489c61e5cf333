package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/readcal/internal/domain"
)

// FormatNotes renders annotations grouped by book. Books without notes are
// left out.
func FormatNotes(books []domain.BookAggregate) string {
	var b strings.Builder
	count := 0
	for _, bk := range books {
		if len(bk.Notes) == 0 {
			continue
		}
		count += len(bk.Notes)
		b.WriteString(BookChip(bk.Color, bk.Border) + " " + BookTitle(bk.Title, bk.Border))
		b.WriteString(Dim(fmt.Sprintf("  %d %s", len(bk.Notes), Plural(len(bk.Notes), "note", "notes"))) + "\n")
		b.WriteString(formatNoteList(bk.Notes))
		b.WriteString("\n")
	}
	if count == 0 {
		return "No annotations found.\n"
	}
	return b.String()
}

func formatNoteList(notes []domain.NoteRecord) string {
	var b strings.Builder
	for _, n := range notes {
		date := n.LocalizedDate
		if date == "" && !n.ISODate.IsZero() {
			date = domain.FormatDay(n.ISODate)
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim(date), NoteTypeBadge(n.Type)))
		if text := strings.TrimSpace(n.Text); text != "" {
			b.WriteString("    " + StyleFg.Render("“"+collapseSpace(text)+"”") + "\n")
		}
		if ann := strings.TrimSpace(n.Annotation); ann != "" {
			b.WriteString("    " + StyleBlue.Render("↳ "+collapseSpace(ann)) + "\n")
		}
	}
	return b.String()
}

// collapseSpace folds runs of whitespace, including newlines in highlighted
// passages, into single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
