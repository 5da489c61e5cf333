package domain

import "fmt"

// ColorPair is a (background, border) color assignment for one book.
type ColorPair struct {
	Background string
	Border     string
}

// Palette is the ordered set of color pairs cycled across distinct books.
type Palette []ColorPair

// DefaultPalette returns the built-in seven-color palette.
func DefaultPalette() Palette {
	return Palette{
		{Background: "#F6D7C8", Border: "#d15700"},
		{Background: "#BAE5D5", Border: "#0a5049"},
		{Background: "#E2D0EB", Border: "#542a87"},
		{Background: "#F8EDD1", Border: "#cb9800"},
		{Background: "#C4DCF2", Border: "#183c8c"},
		{Background: "#FBD3D7", Border: "#ab1f1f"},
		{Background: "#D8E7F5", Border: "#0277a3"},
	}
}

// NewPalette zips two equal-length color lists into a Palette.
func NewPalette(backgrounds, borders []string) (Palette, error) {
	if len(backgrounds) == 0 {
		return nil, fmt.Errorf("palette: %w", ErrEmptyPalette)
	}
	if len(backgrounds) != len(borders) {
		return nil, fmt.Errorf("palette: %d background colors but %d border colors: %w",
			len(backgrounds), len(borders), ErrInvalidPalette)
	}
	p := make(Palette, len(backgrounds))
	for i := range backgrounds {
		if backgrounds[i] == "" || borders[i] == "" {
			return nil, fmt.Errorf("palette: empty color at position %d: %w", i, ErrInvalidPalette)
		}
		p[i] = ColorPair{Background: backgrounds[i], Border: borders[i]}
	}
	return p, nil
}
