package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/flipgrid/internal/board"
)

const (
	DefaultCols         = 4
	DefaultRows         = 3
	DefaultPadSize      = 96
	DefaultGridGap      = 8
	DefaultCornerRadius = 10
	DefaultCyclePeriod  = 4.0
	DefaultStaggerMs    = 60
	DefaultJitterMs     = 40
)

const (
	CascadeSimultaneous = "simultaneous"
	CascadeStaggered    = "staggered"
)

type Config struct {
	Cols               int      `yaml:"cols"`
	Rows               int      `yaml:"rows"`
	PadSize            int      `yaml:"pad_size"`
	GridGap            int      `yaml:"grid_gap"`
	CornerRadius       int      `yaml:"corner_radius"`
	CyclePeriodSeconds float64  `yaml:"cycle_period_seconds"`
	Cascade            string   `yaml:"cascade"`
	StaggerMs          int      `yaml:"stagger_ms"`
	JitterMs           int      `yaml:"jitter_ms"`
	Seed               int64    `yaml:"seed"`
	Images             []string `yaml:"images"`
}

func DefaultConfig() *Config {
	return &Config{
		Cols:               DefaultCols,
		Rows:               DefaultRows,
		PadSize:            DefaultPadSize,
		GridGap:            DefaultGridGap,
		CornerRadius:       DefaultCornerRadius,
		CyclePeriodSeconds: DefaultCyclePeriod,
		Cascade:            CascadeStaggered,
		StaggerMs:          DefaultStaggerMs,
		JitterMs:           DefaultJitterMs,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate fails fast on configurations the board cannot run with.
func (c *Config) Validate() error {
	if c.Cols < 1 || c.Rows < 1 {
		return fmt.Errorf("config: cols and rows must be at least 1 (got %dx%d)", c.Cols, c.Rows)
	}
	if c.PadSize < 1 {
		return fmt.Errorf("config: pad_size must be positive (got %d)", c.PadSize)
	}
	if c.GridGap < 0 {
		return fmt.Errorf("config: grid_gap must not be negative (got %d)", c.GridGap)
	}
	if c.CornerRadius < 0 {
		return fmt.Errorf("config: corner_radius must not be negative (got %d)", c.CornerRadius)
	}
	if c.CyclePeriodSeconds <= 0 {
		return fmt.Errorf("config: cycle_period_seconds must be positive (got %g)", c.CyclePeriodSeconds)
	}
	if c.Cascade != CascadeSimultaneous && c.Cascade != CascadeStaggered {
		return fmt.Errorf("config: cascade must be %q or %q (got %q)",
			CascadeSimultaneous, CascadeStaggered, c.Cascade)
	}
	if len(c.Images) == 1 {
		return fmt.Errorf("config: need at least two images to cycle (got 1)")
	}
	if c.StaggerMs < 0 || c.JitterMs < 0 {
		return fmt.Errorf("config: stagger_ms and jitter_ms must not be negative")
	}
	return nil
}

func (c *Config) CyclePeriod() time.Duration {
	return time.Duration(c.CyclePeriodSeconds * float64(time.Second))
}

// CascadeMode maps the configured cascade name to the board's mode.
func (c *Config) CascadeMode() board.CascadeMode {
	if c.Cascade == CascadeSimultaneous {
		return board.CascadeSimultaneous
	}
	return board.CascadeStaggered
}

// GridOptions assembles the board options for this configuration.
func (c *Config) GridOptions() board.GridOptions {
	return board.GridOptions{
		Cols:        c.Cols,
		Rows:        c.Rows,
		Mode:        c.CascadeMode(),
		StaggerStep: time.Duration(c.StaggerMs) * time.Millisecond,
		Jitter:      time.Duration(c.JitterMs) * time.Millisecond,
		Seed:        c.Seed,
	}
}
