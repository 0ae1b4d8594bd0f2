package forest

import "image/color"

// Appearance is how a renderer should draw one cell state.
type Appearance struct {
	Glyph rune
	Color color.RGBA
}

var appearances = [NumCells]Appearance{
	Empty:   {Glyph: ' ', Color: color.RGBA{R: 0, G: 0, B: 0, A: 255}},
	Tree:    {Glyph: 'A', Color: color.RGBA{R: 0, G: 128, B: 0, A: 255}},
	Burning: {Glyph: '@', Color: color.RGBA{R: 255, G: 0, B: 0, A: 255}},
	Water:   {Glyph: '~', Color: color.RGBA{R: 0, G: 0, B: 255, A: 255}},
}

var forestPalette = buildPalette()

// Look returns the glyph and colour for c. Unknown states draw as Empty.
func Look(c Cell) Appearance {
	if !c.Valid() {
		return appearances[Empty]
	}
	return appearances[c]
}

// Glyph returns the terminal marker for c.
func Glyph(c Cell) rune { return Look(c).Glyph }

// Palette exposes the colour palette indexed by Cell, matching Cells().
func (s *Simulation) Palette() []color.RGBA {
	return forestPalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, NumCells)
	for i := range palette {
		palette[i] = appearances[i].Color
	}
	return palette
}
