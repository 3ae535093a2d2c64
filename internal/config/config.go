package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rulescope/internal/pattern"
)

const (
	DefaultRule         = 110
	DefaultSpeed        = 60.0
	DefaultCellSize     = 6
	DefaultCellMargin   = 1
	DefaultRenderMargin = 8
	DefaultWidth        = 1280
	DefaultHeight       = 720
)

// Config holds the run parameters shared by the GUI and TUI front ends.
type Config struct {
	Rule         int     `yaml:"rule"`
	Speed        float64 `yaml:"speed"` // generations per second
	CellSize     int     `yaml:"cell_size"`
	CellMargin   int     `yaml:"cell_margin"`
	RenderMargin int     `yaml:"render_margin"`
	Backend      string  `yaml:"backend"` // auto, cpu, gpu
	Pattern      string  `yaml:"pattern"`
	Seed         int64   `yaml:"seed"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	StartPaused  bool    `yaml:"start_paused"`
}

func DefaultConfig() *Config {
	return &Config{
		Rule:         DefaultRule,
		Speed:        DefaultSpeed,
		CellSize:     DefaultCellSize,
		CellMargin:   DefaultCellMargin,
		RenderMargin: DefaultRenderMargin,
		Backend:      "auto",
		Pattern:      "center",
		Width:        DefaultWidth,
		Height:       DefaultHeight,
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation or renderers cannot honor.
func (c *Config) Validate() error {
	if c.Rule < 0 || c.Rule > 255 {
		return fmt.Errorf("config: rule %d outside 0..255", c.Rule)
	}
	if c.Speed <= 0 || c.Speed > 1000 {
		return fmt.Errorf("config: speed %g outside (0, 1000]", c.Speed)
	}
	if c.CellSize < 2 {
		return fmt.Errorf("config: cell size %d below minimum 2", c.CellSize)
	}
	if c.CellMargin < 0 || c.RenderMargin < 0 {
		return fmt.Errorf("config: margins must not be negative")
	}
	switch c.Backend {
	case "auto", "cpu", "gpu":
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if pattern.Get(c.Pattern) == nil {
		return fmt.Errorf("config: unknown pattern %q", c.Pattern)
	}
	if c.Width < 64 || c.Height < 64 {
		return fmt.Errorf("config: window %dx%d below minimum 64x64", c.Width, c.Height)
	}
	return nil
}
