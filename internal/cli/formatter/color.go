package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/readcal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette for chrome; book colors come from the
// aggregation palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BookChip renders a small swatch in a book's assigned colors.
func BookChip(background, border string) string {
	if background == "" {
		return StyleDim.Render("■")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color(border)).
		Render("■")
}

// BookTitle renders a title in the book's border color so it matches its chip.
func BookTitle(title, border string) string {
	if border == "" {
		return StyleBold.Render(title)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(border)).Bold(true).Render(title)
}

// NoteTypeBadge returns a colored marker for an annotation type.
func NoteTypeBadge(t domain.NoteType) string {
	switch t {
	case domain.NoteHighlight:
		return StyleYellow.Render("▍Highlight")
	case domain.NoteNote:
		return StyleBlue.Render("✎ Note")
	case domain.NoteBookmark:
		return StylePurple.Render("⚑ Bookmark")
	case domain.NoteDogear:
		return StyleDim.Render("◣ Dog-ear")
	default:
		return StyleDim.Render(string(t))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
