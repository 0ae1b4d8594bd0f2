package forest

import (
	"fmt"

	"forestfire/pkg/core"
)

// Populate builds a w*h grid where each cell is independently a Tree when its
// draw is at or below density, else Empty. One draw per cell, row-major.
func Populate(w, h int, density float64, src core.Source) *Grid {
	g := NewGrid(w, h)
	cells := g.Cells()
	for i := range cells {
		if core.Chance(src, density) {
			cells[i] = Tree
		} else {
			cells[i] = Empty
		}
	}
	return g
}

// StampLake marks every cell within radius (Euclidean, inclusive) of
// (cx, cy) as Water, overwriting whatever was there.
func StampLake(g *Grid, cx, cy, radius int) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= g.H {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= g.W {
				continue
			}
			if dx*dx+dy*dy > r2 {
				continue
			}
			g.cells[g.Index(x, y)] = Water
		}
	}
}

// Next computes the following generation into a freshly allocated grid.
func Next(cur *Grid, p Params, src core.Source) *Grid {
	dst := NewGrid(cur.W, cur.H)
	Advance(dst, cur, p, src)
	return dst
}

// Advance writes the generation following cur into dst. It reads only cur and
// writes only dst, so every cell sees the same prior snapshot. dst must have
// the same dimensions as cur and must not alias it.
//
// The first pass applies the independent per-cell rules; the second lets fire
// spread from every burning cell onto neighbouring trees, overriding any
// growth or ignition outcome from the first pass.
func Advance(dst, cur *Grid, p Params, src core.Source) {
	if dst.W != cur.W || dst.H != cur.H {
		panic(fmt.Sprintf("forest: advance %dx%d into %dx%d", cur.W, cur.H, dst.W, dst.H))
	}
	if dst == cur {
		panic("forest: advance into the grid being read")
	}

	for i, c := range cur.cells {
		next := c
		switch c {
		case Water:
		case Empty:
			if core.Chance(src, p.GrowChance) {
				next = Tree
			}
		case Tree:
			if core.Chance(src, p.FireChance) {
				next = Burning
			}
		case Burning:
			next = Empty
		}
		dst.cells[i] = next
	}

	w, h := cur.W, cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cur.cells[y*w+x] != Burning {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					if dx == 0 && dy == 0 {
						continue
					}
					nIdx := ny*w + nx
					if cur.cells[nIdx] == Tree {
						dst.cells[nIdx] = Burning
					}
				}
			}
		}
	}
}
