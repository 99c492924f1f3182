package wavegrid

import (
	"strconv"

	"tilewave/pkg/wfc"
)

// Config controls the wave grid dimensions, source pattern and pacing.
type Config struct {
	Width  int
	Height int

	// TileSize is the side length of the tiles cut from the pattern.
	TileSize int
	// Pattern is a built-in pattern name or an image path.
	Pattern string

	Seed int64

	// StepsPerTick is how many grid steps one Step call runs.
	StepsPerTick int
}

// Bounds for the HUD steps-per-tick control.
const (
	MinStepsPerTick = 1
	MaxStepsPerTick = 64
)

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        40,
		Height:       40,
		TileSize:     wfc.DefaultTileSize,
		Pattern:      "city",
		Seed:         42,
		StepsPerTick: 1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["steps_per_tick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StepsPerTick = clampSteps(parsed)
		}
	}
	return c
}

func clampSteps(n int) int {
	if n < MinStepsPerTick {
		return MinStepsPerTick
	}
	if n > MaxStepsPerTick {
		return MaxStepsPerTick
	}
	return n
}
