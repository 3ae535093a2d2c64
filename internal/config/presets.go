package config

import "sort"

// Presets are named starting points for well-known rules.
var Presets = map[string]*Config{
	"chaos": {
		Rule: 30, Speed: 120, CellSize: 4, CellMargin: 1, RenderMargin: 8,
		Backend: "auto", Pattern: "center", Width: 1280, Height: 720,
	},
	"turing": {
		Rule: 110, Speed: 60, CellSize: 6, CellMargin: 1, RenderMargin: 8,
		Backend: "auto", Pattern: "random", Width: 1280, Height: 720,
	},
	"sierpinski": {
		Rule: 90, Speed: 30, CellSize: 8, CellMargin: 2, RenderMargin: 8,
		Backend: "auto", Pattern: "center", Width: 1280, Height: 720,
	},
	"traffic": {
		Rule: 184, Speed: 60, CellSize: 6, CellMargin: 1, RenderMargin: 8,
		Backend: "auto", Pattern: "random", Width: 1280, Height: 720,
	},
	"stress": {
		Rule: 30, Speed: 1000, CellSize: 2, CellMargin: 0, RenderMargin: 0,
		Backend: "gpu", Pattern: "random", Width: 1280, Height: 720,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
