package app

import (
	"flag"
	"fmt"
	"strconv"

	"snorkel/internal/config"
	"snorkel/internal/core"
	"snorkel/internal/sims/orca"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Rows       int
	Cols       int
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
	LogLevel   string
	LogFormat  string

	// Empty is the glyph drawn for empty cells. It is only settable from the
	// settings file.
	Empty rune
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:       "orca",
		Rows:      20,
		Cols:      80,
		Scale:     2,
		TPS:       8,
		Seed:      1,
		LogLevel:  "info",
		LogFormat: "text",
		Empty:     '·',
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "registered grid program to run")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "grid ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the Rand operator")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional HCL settings file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// LoadFile reads ConfigPath, if set, and applies it. Flags that were set
// explicitly on fs keep their command-line values.
func (c *Config) LoadFile(fs *flag.FlagSet) error {
	if c.ConfigPath == "" {
		return nil
	}
	s, err := config.Load(c.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Apply(s, explicitFlags(fs))
	return nil
}

// Apply copies every value present in s unless its flag name is in keep.
func (c *Config) Apply(s *config.Settings, keep map[string]bool) {
	setInt := func(name string, dst *int, v *int) {
		if v != nil && !keep[name] {
			*dst = *v
		}
	}
	setString := func(name string, dst *string, v *string) {
		if v != nil && !keep[name] {
			*dst = *v
		}
	}
	setInt("rows", &c.Rows, s.Rows)
	setInt("cols", &c.Cols, s.Cols)
	setInt("tps", &c.TPS, s.TPS)
	if s.Seed != nil && !keep["seed"] {
		c.Seed = *s.Seed
	}
	setString("log-level", &c.LogLevel, s.LogLevel)
	setString("log-format", &c.LogFormat, s.LogFormat)
	if s.Empty != nil {
		c.Empty = *s.Empty
	}
}

// SimConfig returns the factory options described by c.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"rows": strconv.Itoa(c.Rows),
		"cols": strconv.Itoa(c.Cols),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}

// NewGrid looks up the configured sim in the registry, builds it from c and
// resets it with the configured seed.
func (c *Config) NewGrid() (*orca.Grid, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", c.Sim)
	}
	sim := factory(c.SimConfig())
	sim.Reset(c.Seed)
	grid, ok := sim.(*orca.Grid)
	if !ok {
		return nil, fmt.Errorf("sim %q is not an operator grid", sim.Name())
	}
	return grid, nil
}

func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	if fs == nil {
		return set
	}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
