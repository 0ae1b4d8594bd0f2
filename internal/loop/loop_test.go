package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"forestfire/internal/forest"
)

func newSim(t *testing.T) *forest.Simulation {
	t.Helper()
	cfg := forest.DefaultConfig()
	cfg.Width = 20
	cfg.Height = 10
	cfg.Params.LakeRadius = 2
	cfg.Params.FireChance = 0.05
	sim, err := forest.New(cfg)
	if err != nil {
		t.Fatalf("forest.New: %v", err)
	}
	return sim
}

func immediate(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func TestRunRendersEveryTickInOrder(t *testing.T) {
	sim := newSim(t)
	var ticks []int
	var prev *forest.Grid
	r := RendererFunc(func(fr Frame) error {
		ticks = append(ticks, fr.Tick)
		if fr.Grid.W != 20 || fr.Grid.H != 10 {
			t.Fatalf("frame %d has size %dx%d", fr.Tick, fr.Grid.W, fr.Grid.H)
		}
		if fr.Census.Total() != 200 {
			t.Fatalf("frame %d census covers %d cells", fr.Tick, fr.Census.Total())
		}
		if prev != nil {
			for i, c := range prev.Cells() {
				if c == forest.Burning && fr.Grid.Cells()[i] != forest.Empty {
					t.Fatalf("frame %d: burning cell %d became %v", fr.Tick, i, fr.Grid.Cells()[i])
				}
			}
		}
		prev = fr.Grid.Clone()
		return nil
	})

	var pauses []time.Duration
	d := New(sim, r, Options{
		Pause:    250 * time.Millisecond,
		MaxTicks: 5,
		After: func(p time.Duration) <-chan time.Time {
			pauses = append(pauses, p)
			return immediate(p)
		},
	})
	if d.State() != Running {
		t.Fatalf("new driver state = %v", d.State())
	}
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []int{0, 1, 2, 3, 4, 5}
	if len(ticks) != len(want) {
		t.Fatalf("rendered ticks %v, expected %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("rendered ticks %v, expected %v", ticks, want)
		}
	}
	if len(pauses) != 5 {
		t.Fatalf("paused %d times, expected 5", len(pauses))
	}
	for _, p := range pauses {
		if p != 250*time.Millisecond {
			t.Fatalf("pause = %v", p)
		}
	}
	if d.State() != Terminated {
		t.Fatalf("state after run = %v", d.State())
	}
	if d.Ticks() != 5 {
		t.Fatalf("ticks = %d", d.Ticks())
	}
}

func TestRunStopsBetweenTicksOnCancel(t *testing.T) {
	sim := newSim(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := RendererFunc(func(fr Frame) error {
		if fr.Tick == 3 {
			cancel()
		}
		return nil
	})
	d := New(sim, r, Options{})
	if err := d.Run(ctx); err != nil {
		t.Fatalf("interrupt should not be an error: %v", err)
	}
	if d.Ticks() != 3 {
		t.Fatalf("simulation stepped to %d after cancel at 3", d.Ticks())
	}
	if d.State() != Terminated {
		t.Fatalf("state = %v", d.State())
	}
}

func TestRunStopsDuringPause(t *testing.T) {
	sim := newSim(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := 0
	r := RendererFunc(func(Frame) error {
		frames++
		return nil
	})
	never := make(chan time.Time)
	d := New(sim, r, Options{
		Pause: time.Hour,
		After: func(time.Duration) <-chan time.Time {
			cancel()
			return never
		},
	})

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if frames != 1 {
		t.Fatalf("rendered %d frames, expected only the initial one", frames)
	}
	if d.Ticks() != 1 {
		t.Fatalf("ticks = %d, expected 1", d.Ticks())
	}
}

func TestRunAlreadyCancelledRendersOnce(t *testing.T) {
	sim := newSim(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames := 0
	d := New(sim, RendererFunc(func(Frame) error { frames++; return nil }), Options{})
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if frames != 1 || d.Ticks() != 0 {
		t.Fatalf("frames=%d ticks=%d, expected 1 and 0", frames, d.Ticks())
	}
}

func TestRunReportsRendererError(t *testing.T) {
	sim := newSim(t)
	boom := errors.New("screen gone")
	r := RendererFunc(func(fr Frame) error {
		if fr.Tick == 2 {
			return boom
		}
		return nil
	})
	d := New(sim, r, Options{})
	err := d.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped renderer error, got %v", err)
	}
	if d.State() != Terminated {
		t.Fatalf("state = %v", d.State())
	}
}

func TestMultiFansOut(t *testing.T) {
	var a, b int
	m := Multi(
		RendererFunc(func(Frame) error { a++; return nil }),
		RendererFunc(func(Frame) error { b++; return nil }),
	)
	for i := 0; i < 3; i++ {
		if err := m.Render(Frame{Tick: i}); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}
	if a != 3 || b != 3 {
		t.Fatalf("a=%d b=%d, expected 3 each", a, b)
	}

	stop := errors.New("stop")
	m = Multi(
		RendererFunc(func(Frame) error { return stop }),
		RendererFunc(func(Frame) error { b++; return nil }),
	)
	if err := m.Render(Frame{}); !errors.Is(err, stop) {
		t.Fatalf("expected stop, got %v", err)
	}
	if b != 3 {
		t.Fatal("renderer after a failing one should not run")
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || Terminated.String() != "terminated" || State(7).String() != "unknown" {
		t.Fatal("unexpected state names")
	}
}
