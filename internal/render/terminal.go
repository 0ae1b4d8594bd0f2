package render

import (
	"context"
	"fmt"

	"forestfire/internal/forest"
	"forestfire/internal/loop"

	"github.com/gdamore/tcell/v2"
)

// QuitHint is appended to the status line.
const QuitHint = "Press Ctrl-C to quit."

// Terminal draws frames onto a tcell screen: the grid from the top-left
// corner, then a status line and a census line underneath.
type Terminal struct {
	screen tcell.Screen
	styles [forest.NumCells]tcell.Style
	status string
}

var _ loop.Renderer = (*Terminal)(nil)

// NewTerminal wraps an initialized screen. status is printed under the grid.
func NewTerminal(screen tcell.Screen, status string) *Terminal {
	t := &Terminal{screen: screen, status: status}
	for c := forest.Cell(0); c < forest.NumCells; c++ {
		t.styles[c] = StyleFor(c)
	}
	return t
}

// StyleFor maps a cell state to its terminal style.
func StyleFor(c forest.Cell) tcell.Style {
	if c == forest.Empty {
		return tcell.StyleDefault
	}
	col := forest.Look(c).Color
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
}

// Render draws one frame and flushes it to the terminal.
func (t *Terminal) Render(fr loop.Frame) error {
	g := fr.Grid
	if g == nil {
		return fmt.Errorf("render: frame %d has no grid", fr.Tick)
	}
	t.screen.Clear()
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := cells[g.Index(x, y)]
			if !c.Valid() {
				c = forest.Empty
			}
			t.screen.SetContent(x, y, forest.Glyph(c), nil, t.styles[c])
		}
	}

	status := QuitHint
	if t.status != "" {
		status = t.status + "  " + QuitHint
	}
	t.drawText(0, g.H, status)
	t.drawText(0, g.H+1, fmt.Sprintf("Tick %d  Trees %d  Burning %d  Empty %d",
		fr.Tick, fr.Census.Tree, fr.Census.Burning, fr.Census.Empty))

	t.screen.Show()
	return nil
}

func (t *Terminal) drawText(x, y int, s string) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}

// WatchKeys polls screen events until the screen is finalized, cancelling
// the run on Ctrl-C, Esc or q. Resizes trigger a full repaint.
func WatchKeys(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuit(ev) {
				cancel()
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
