package activity

import "github.com/alexanderramin/readcal/internal/domain"

// ColorCycle hands out palette pairs round-robin, one per distinct title.
// A cycle belongs to a single aggregation pass and is not safe for
// concurrent use.
type ColorCycle struct {
	palette  domain.Palette
	cursor   int
	assigned map[string]domain.ColorPair
}

// NewColorCycle creates a cycle positioned at the first palette pair.
func NewColorCycle(palette domain.Palette) (*ColorCycle, error) {
	if len(palette) == 0 {
		return nil, domain.ErrEmptyPalette
	}
	return &ColorCycle{
		palette:  palette,
		assigned: make(map[string]domain.ColorPair),
	}, nil
}

// Assign returns the pair already given to title, or the next pair in
// cycle order.
func (c *ColorCycle) Assign(title string) domain.ColorPair {
	if pair, ok := c.assigned[title]; ok {
		return pair
	}
	pair := c.palette[c.cursor]
	c.assigned[title] = pair
	c.cursor = (c.cursor + 1) % len(c.palette)
	return pair
}
