// Package loop drives a forest simulation: render, step, pause, repeat,
// until the context is cancelled.
package loop

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"forestfire/internal/forest"
)

// State is the driver lifecycle.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Frame is a fully computed generation handed to a renderer. Grid is only
// valid for the duration of the Render call.
type Frame struct {
	Tick   int
	Grid   *forest.Grid
	Census forest.Census
}

// Renderer consumes one frame per tick.
type Renderer interface {
	Render(Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame) error

func (f RendererFunc) Render(fr Frame) error { return f(fr) }

// Multi fans a frame out to several renderers, stopping at the first error.
func Multi(rs ...Renderer) Renderer {
	return RendererFunc(func(fr Frame) error {
		for _, r := range rs {
			if err := r.Render(fr); err != nil {
				return err
			}
		}
		return nil
	})
}

// Options tunes a Driver.
type Options struct {
	// Pause is the sleep between ticks.
	Pause time.Duration
	// MaxTicks stops the loop after that many steps. Zero runs until cancelled.
	MaxTicks int
	// Logger receives lifecycle messages. Nil discards them.
	Logger *log.Logger
	// After replaces time.After, for tests.
	After func(time.Duration) <-chan time.Time
}

// Driver owns the simulation for the lifetime of one Run.
type Driver struct {
	sim   *forest.Simulation
	r     Renderer
	opts  Options
	log   *log.Logger
	state State
}

// New builds a driver. The simulation must already be initialized.
func New(sim *forest.Simulation, r Renderer, opts Options) *Driver {
	if opts.Pause < 0 {
		opts.Pause = 0
	}
	if opts.After == nil {
		opts.After = time.After
	}
	lg := opts.Logger
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	return &Driver{sim: sim, r: r, opts: opts, log: lg, state: Running}
}

// State reports where the driver is in its lifecycle.
func (d *Driver) State() State { return d.state }

// Ticks is the number of steps the simulation has taken.
func (d *Driver) Ticks() int { return d.sim.Tick() }

// Run renders the initial generation and then loops until ctx is cancelled or
// MaxTicks is reached. Cancellation is a normal exit and returns nil; only a
// renderer failure is reported as an error.
func (d *Driver) Run(ctx context.Context) error {
	defer func() { d.state = Terminated }()
	d.state = Running
	d.log.Printf("forest %dx%d running, pause %v", d.sim.Size().W, d.sim.Size().H, d.opts.Pause)

	if err := d.render(); err != nil {
		return err
	}
	for {
		if ctx.Err() != nil {
			d.log.Printf("interrupted at tick %d", d.sim.Tick())
			return nil
		}
		if d.opts.MaxTicks > 0 && d.sim.Tick() >= d.opts.MaxTicks {
			d.log.Printf("stopped after %d ticks", d.sim.Tick())
			return nil
		}

		d.sim.Step()

		if !d.sleep(ctx) {
			d.log.Printf("interrupted at tick %d", d.sim.Tick())
			return nil
		}
		if err := d.render(); err != nil {
			return err
		}
	}
}

func (d *Driver) render() error {
	g := d.sim.Grid()
	fr := Frame{Tick: d.sim.Tick(), Grid: g, Census: g.Census()}
	if err := d.r.Render(fr); err != nil {
		return fmt.Errorf("render tick %d: %w", fr.Tick, err)
	}
	return nil
}

// sleep waits out the pause. It reports false if ctx was cancelled first.
func (d *Driver) sleep(ctx context.Context) bool {
	if d.opts.Pause == 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-d.opts.After(d.opts.Pause):
		return true
	}
}
