package forest

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidConfig is matched by every ConfigError via errors.Is.
var ErrInvalidConfig = errors.New("forest: invalid configuration")

// ConfigError reports a single rejected configuration value.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("forest: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// Params holds the probabilities and terrain options for the forest sim.
type Params struct {
	InitialTreeDensity float64
	GrowChance         float64
	FireChance         float64

	Lake       bool
	LakeRadius int
}

// Config controls the forest simulation dimensions and pacing.
type Config struct {
	Width  int
	Height int

	Seed int64

	// TickPause is the sleep between ticks in the driving loop.
	TickPause time.Duration

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     79,
		Height:    22,
		Seed:      1337,
		TickPause: 500 * time.Millisecond,
		Params: Params{
			InitialTreeDensity: 0.20,
			GrowChance:         0.01,
			FireChance:         0.01,
			Lake:               true,
			LakeRadius:         7,
		},
	}
}

// Validate checks every field and joins all problems into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 {
		errs = append(errs, &ConfigError{Field: "w", Value: strconv.Itoa(c.Width), Reason: "must be positive"})
	}
	if c.Height <= 0 {
		errs = append(errs, &ConfigError{Field: "h", Value: strconv.Itoa(c.Height), Reason: "must be positive"})
	}
	if c.TickPause < 0 {
		errs = append(errs, &ConfigError{Field: "tick_pause", Value: c.TickPause.String(), Reason: "must not be negative"})
	}
	errs = append(errs, probabilityError("initial_tree_density", c.Params.InitialTreeDensity))
	errs = append(errs, probabilityError("grow_chance", c.Params.GrowChance))
	errs = append(errs, probabilityError("fire_chance", c.Params.FireChance))
	if c.Params.Lake && c.Params.LakeRadius < 0 {
		errs = append(errs, &ConfigError{Field: "lake_radius", Value: strconv.Itoa(c.Params.LakeRadius), Reason: "must not be negative"})
	}
	return errors.Join(errs...)
}

func probabilityError(field string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return &ConfigError{Field: field, Value: formatFloat(v), Reason: "must be within [0, 1]"}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs) on top of the defaults, then validates the result.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var errs []error
	for _, k := range keys {
		if err := c.ApplyOverride(k, cfg[k]); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// ApplyOverride sets a single key. Parse failures and unknown keys are
// reported as ConfigErrors; range checks are left to Validate.
func (c *Config) ApplyOverride(key, value string) error {
	value = strings.TrimSpace(value)
	bad := func(reason string) error {
		return &ConfigError{Field: key, Value: value, Reason: reason}
	}
	switch strings.TrimSpace(key) {
	case "w", "width":
		v, err := strconv.Atoi(value)
		if err != nil {
			return bad("not an integer")
		}
		c.Width = v
	case "h", "height":
		v, err := strconv.Atoi(value)
		if err != nil {
			return bad("not an integer")
		}
		c.Height = v
	case "seed":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return bad("not an integer")
		}
		c.Seed = v
	case "tick_pause":
		v, err := parsePause(value)
		if err != nil {
			return bad("not a duration")
		}
		c.TickPause = v
	case "initial_tree_density":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return bad("not a number")
		}
		c.Params.InitialTreeDensity = v
	case "grow_chance":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return bad("not a number")
		}
		c.Params.GrowChance = v
	case "fire_chance":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return bad("not a number")
		}
		c.Params.FireChance = v
	case "lake":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return bad("not a boolean")
		}
		c.Params.Lake = v
	case "lake_radius":
		v, err := strconv.Atoi(value)
		if err != nil {
			return bad("not an integer")
		}
		c.Params.LakeRadius = v
	default:
		return bad("unknown parameter")
	}
	return nil
}

// parsePause accepts Go durations ("250ms") or bare seconds ("0.5").
func parsePause(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, fmt.Errorf("parse pause %q", s)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Summary renders the chances the way the status line shows them.
func (p Params) Summary() string {
	return fmt.Sprintf("Grow chance: %s%%  Lightning chance: %s%%",
		formatFloat(p.GrowChance*100), formatFloat(p.FireChance*100))
}
