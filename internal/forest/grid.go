package forest

import "slices"

// Grid stores a fixed-size 2D field of cells in row-major order. Every
// in-bounds coordinate holds exactly one state.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates an all-Empty grid. Non-positive dimensions are clamped to
// one; callers that need rejection validate a Config first.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the state at (x, y). Out-of-bounds coordinates read as Empty,
// which is never Burning, so they never spread fire.
func (g *Grid) At(x, y int) Cell {
	if !g.In(x, y) {
		return Empty
	}
	return g.cells[g.Index(x, y)]
}

// Set writes the state at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.In(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = c
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, cells: slices.Clone(g.cells)}
}

// Equal reports whether both grids have the same dimensions and states.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.W == o.W && g.H == o.H && slices.Equal(g.cells, o.cells)
}

// Count returns how many cells hold state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Census tallies every state in one pass.
type Census struct {
	Empty   int
	Tree    int
	Burning int
	Water   int
}

// Total is the number of cells counted.
func (c Census) Total() int { return c.Empty + c.Tree + c.Burning + c.Water }

// Census counts the cells of each state.
func (g *Grid) Census() Census {
	var c Census
	for _, v := range g.cells {
		switch v {
		case Empty:
			c.Empty++
		case Tree:
			c.Tree++
		case Burning:
			c.Burning++
		case Water:
			c.Water++
		}
	}
	return c
}
