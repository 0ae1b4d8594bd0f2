package app

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"forestfire/internal/forest"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestDefaultsResolve(t *testing.T) {
	got, err := parse(t).Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != forest.DefaultConfig() {
		t.Fatalf("defaults changed: %+v", got)
	}
}

func TestFlagsAndOverrides(t *testing.T) {
	cfg := parse(t,
		"-w", "40", "-h", "12", "-pause", "100ms", "-grow", "0.05",
		"-lake=false", "-set", "fire_chance=0.2", "-set", "seed=9",
	)
	got, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Width != 40 || got.Height != 12 || got.TickPause != 100*time.Millisecond {
		t.Fatalf("unexpected world %+v", got)
	}
	if got.Params.GrowChance != 0.05 || got.Params.FireChance != 0.2 || got.Params.Lake {
		t.Fatalf("unexpected params %+v", got.Params)
	}
	if got.Seed != 9 {
		t.Fatalf("seed = %d", got.Seed)
	}
}

func TestResolveRejects(t *testing.T) {
	tests := map[string][]string{
		"probability":  {"-fire", "3"},
		"dimension":    {"-w", "0"},
		"bad override": {"-set", "fire_chance"},
		"unknown key":  {"-set", "humidity=2"},
		"scale":        {"-scale", "0"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := parse(t, args...).Resolve(); !errors.Is(err, forest.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
