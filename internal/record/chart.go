package record

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewSamples is returned when a chart would have no extent.
var ErrTooFewSamples = errors.New("record: need at least two samples to chart")

// ChartOptions sizes the rendered chart.
type ChartOptions struct {
	Title  string
	Width  int
	Height int
}

// DefaultChartOptions returns a landscape chart size.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Title: "Forest population", Width: 1024, Height: 400}
}

// WriteChart renders tree, burning and empty counts over time as a PNG.
func (h *History) WriteChart(w io.Writer, opts ChartOptions) error {
	if len(h.Samples) < 2 {
		return ErrTooFewSamples
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultChartOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	ticks := make([]float64, len(h.Samples))
	trees := make([]float64, len(h.Samples))
	burning := make([]float64, len(h.Samples))
	empty := make([]float64, len(h.Samples))
	for i, s := range h.Samples {
		ticks[i] = float64(s.Tick)
		trees[i] = float64(s.Census.Tree)
		burning[i] = float64(s.Census.Burning)
		empty[i] = float64(s.Census.Empty)
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Trees",
				XValues: ticks,
				YValues: trees,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 0, G: 128, B: 0, A: 255}, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Burning",
				XValues: ticks,
				YValues: burning,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Empty",
				XValues: ticks,
				YValues: empty,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 160, G: 160, B: 160, A: 255}, StrokeWidth: 1.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
