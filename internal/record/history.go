// Package record captures per-tick population counts from a running forest
// and exports them as CSV or a PNG chart.
package record

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"forestfire/internal/forest"
	"forestfire/internal/loop"
)

// Sample is the census of one tick.
type Sample struct {
	Tick   int
	Census forest.Census
}

// History collects one sample per rendered frame.
type History struct {
	Samples []Sample
}

var _ loop.Renderer = (*History)(nil)

// Render appends the frame's census.
func (h *History) Render(fr loop.Frame) error {
	h.Samples = append(h.Samples, Sample{Tick: fr.Tick, Census: fr.Census})
	return nil
}

// Peak returns the sample with the most burning cells. ok is false when the
// history is empty.
func (h *History) Peak() (s Sample, ok bool) {
	for i, cur := range h.Samples {
		if i == 0 || cur.Census.Burning > s.Census.Burning {
			s = cur
			ok = true
		}
	}
	return s, ok
}

var csvHeader = []string{"tick", "empty", "tree", "burning", "water"}

// WriteCSV writes a header and one row per sample.
func (h *History) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range h.Samples {
		row := []string{
			strconv.Itoa(s.Tick),
			strconv.Itoa(s.Census.Empty),
			strconv.Itoa(s.Census.Tree),
			strconv.Itoa(s.Census.Burning),
			strconv.Itoa(s.Census.Water),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv tick %d: %w", s.Tick, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
