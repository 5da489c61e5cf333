package activity

import (
	"fmt"
	"math"
)

// FormatDuration renders reading minutes as an hours/minutes label such as
// "1h 15m", "45m" or "2h". Anything above zero that rounds away shows "<1m".
func FormatDuration(minutes float64) string {
	if minutes <= 0 || math.IsNaN(minutes) {
		return "0m"
	}
	total := int(math.Round(minutes))
	if total == 0 {
		return "<1m"
	}
	h := total / 60
	m := total % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
