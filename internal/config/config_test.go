package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Rule != 110 {
		t.Errorf("expected rule 110, got %d", cfg.Rule)
	}
	if cfg.Speed <= 0 {
		t.Error("speed should be positive")
	}
	if cfg.Backend != "auto" {
		t.Errorf("expected backend auto, got %s", cfg.Backend)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"rule too large", func(c *Config) { c.Rule = 256 }},
		{"negative rule", func(c *Config) { c.Rule = -1 }},
		{"zero speed", func(c *Config) { c.Speed = 0 }},
		{"speed too high", func(c *Config) { c.Speed = 1500 }},
		{"cell size too small", func(c *Config) { c.CellSize = 1 }},
		{"negative margin", func(c *Config) { c.CellMargin = -1 }},
		{"unknown backend", func(c *Config) { c.Backend = "vulkan" }},
		{"unknown pattern", func(c *Config) { c.Pattern = "gosper" }},
		{"window too small", func(c *Config) { c.Width = 10 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rulescope.yaml")
	data := []byte("rule: 90\nspeed: 240\npattern: random\nbackend: cpu\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rule != 90 || cfg.Speed != 240 || cfg.Pattern != "random" || cfg.Backend != "cpu" {
		t.Errorf("loaded config %+v missing file values", cfg)
	}
	// unspecified keys keep defaults
	if cfg.CellSize != DefaultCellSize {
		t.Errorf("cell size = %d, want default %d", cfg.CellSize, DefaultCellSize)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rulescope.yaml")
	if err := os.WriteFile(path, []byte("rule: 999\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for rule 999")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sierpinski")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Rule != 90 {
		t.Errorf("expected rule 90, got %d", cfg.Rule)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	// the copy must not alias the table entry
	cfg.Rule = 0
	if Presets["sierpinski"].Rule != 90 {
		t.Error("mutating a returned preset changed the table")
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
