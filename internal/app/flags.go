package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"forestfire/internal/forest"
)

// Overrides collects repeatable key=value flags.
type Overrides []string

func (l *Overrides) String() string {
	return strings.Join(*l, ",")
}

func (l *Overrides) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Forest forest.Config

	Scale int
	Set   Overrides
}

// NewConfig returns a Config populated with the forest defaults.
func NewConfig() *Config {
	return &Config{Forest: forest.DefaultConfig(), Scale: 8}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	f := &c.Forest
	fs.IntVar(&f.Width, "w", f.Width, "grid width in cells")
	fs.IntVar(&f.Height, "h", f.Height, "grid height in cells")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for the random source")
	fs.DurationVar(&f.TickPause, "pause", f.TickPause, "pause between ticks")
	fs.Float64Var(&f.Params.InitialTreeDensity, "density", f.Params.InitialTreeDensity, "initial tree density in [0,1]")
	fs.Float64Var(&f.Params.GrowChance, "grow", f.Params.GrowChance, "chance an empty cell grows a tree each tick")
	fs.Float64Var(&f.Params.FireChance, "fire", f.Params.FireChance, "chance lightning ignites a tree each tick")
	fs.BoolVar(&f.Params.Lake, "lake", f.Params.Lake, "stamp a lake at the grid midpoint")
	fs.IntVar(&f.Params.LakeRadius, "lake-radius", f.Params.LakeRadius, "lake radius in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (windowed build)")
	fs.Var(&c.Set, "set", "parameter override in key=value form (repeatable)")
}

// Resolve applies -set overrides on top of the flags and validates the
// resulting forest configuration.
func (c *Config) Resolve() (forest.Config, error) {
	cfg := c.Forest
	var errs []error
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			errs = append(errs, &forest.ConfigError{Field: "set", Value: kv, Reason: "expected key=value"})
			continue
		}
		if err := cfg.ApplyOverride(key, value); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	if c.Scale <= 0 {
		return cfg, &forest.ConfigError{Field: "scale", Value: fmt.Sprint(c.Scale), Reason: "must be positive"}
	}
	return cfg, cfg.Validate()
}
