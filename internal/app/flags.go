package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"tilewave/internal/logging"
	"tilewave/internal/sims/wavegrid"

	"gopkg.in/yaml.v3"
)

// Config represents the application parameters. Values come from defaults,
// then an optional YAML file, then command-line flags.
type Config struct {
	File string `yaml:"-"`

	Sim   string `yaml:"sim"`
	Scale int    `yaml:"scale"`
	TPS   int    `yaml:"tps"`
	Seed  int64  `yaml:"seed"`

	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Pattern      string `yaml:"pattern"`
	TileSize     int    `yaml:"tile_size"`
	StepsPerTick int    `yaml:"steps_per_tick"`

	HUDWidth int `yaml:"hud_width"`

	Logging logging.Config `yaml:"logging"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	grid := wavegrid.DefaultConfig()
	return &Config{
		Sim:          wavegrid.Name,
		Scale:        10,
		TPS:          30,
		Seed:         grid.Seed,
		Width:        grid.Width,
		Height:       grid.Height,
		Pattern:      grid.Pattern,
		TileSize:     grid.TileSize,
		StepsPerTick: grid.StepsPerTick,
		HUDWidth:     220,
		Logging:      logging.DefaultConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML config file")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern name or image path")
	fs.IntVar(&c.TileSize, "tile", c.TileSize, "tile size in pixels")
	fs.IntVar(&c.StepsPerTick, "steps", c.StepsPerTick, "grid steps per tick")
	fs.StringVar(&c.Logging.Level, "log-level", c.Logging.Level, "log level (DEBUG, INFO, WARN, ERROR)")
}

// Parse parses args into fs. When -config names a file it is loaded and
// the args are parsed again so explicit flags win over file values.
// Logging environment overrides are applied last.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File != "" {
		if err := c.LoadFile(c.File); err != nil {
			return err
		}
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	c.Logging.ApplyEnv()
	return nil
}

// LoadFile overlays the fields present in a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// SimConfig returns the key/value map consumed by sim factories.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":              strconv.Itoa(c.Width),
		"h":              strconv.Itoa(c.Height),
		"tile":           strconv.Itoa(c.TileSize),
		"pattern":        c.Pattern,
		"seed":           strconv.FormatInt(c.Seed, 10),
		"steps_per_tick": strconv.Itoa(c.StepsPerTick),
	}
}
