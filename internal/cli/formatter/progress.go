package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders value relative to max as a fixed-width bar such as
// ████░░░░, drawn in the given color.
func RenderBar(value, max float64, width int, color string) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if max > 0 {
		pct = value / max
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct*float64(width) + 0.5)
	if value > 0 && filled == 0 {
		filled = 1
	}
	if filled > width {
		filled = width
	}
	empty := width - filled

	style := StyleGreen
	if color != "" {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return style.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, empty))
}
