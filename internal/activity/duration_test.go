package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "0m"},
		{-3, "0m"},
		{0.2, "<1m"},
		{1, "1m"},
		{44.6, "45m"},
		{60, "1h"},
		{75, "1h 15m"},
		{119.5, "2h"},
		{605, "10h 5m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes), "minutes=%v", tt.minutes)
	}
}
