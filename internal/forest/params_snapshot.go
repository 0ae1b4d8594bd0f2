package forest

import (
	"strconv"

	"forestfire/internal/core"
)

// Parameters describes the current tunables. Every key is accepted by
// ApplyOverride.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	return s.cfg.Parameters()
}

// Parameters describes the config as a snapshot for display.
func (c Config) Parameters() core.ParameterSnapshot {
	p := c.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
				{Key: "tick_pause", Label: "Tick pause", Type: core.ParamTypeDuration, Value: c.TickPause.String()},
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("initial_tree_density", "Initial tree density", p.InitialTreeDensity),
				floatParam("grow_chance", "Grow chance", p.GrowChance),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("fire_chance", "Lightning chance", p.FireChance),
			},
		},
		{
			Name:    "Terrain",
			Summary: "Circular lake at the grid midpoint acting as a firebreak.",
			Params: []core.Parameter{
				{Key: "lake", Label: "Lake", Type: core.ParamTypeBool, Value: strconv.FormatBool(p.Lake)},
				intParam("lake_radius", "Lake radius", p.LakeRadius),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: formatFloat(v)}
}
