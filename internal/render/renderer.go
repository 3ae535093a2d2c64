package render

import (
	"rulescope/internal/automaton"
	"rulescope/internal/sim"
)

// Renderer draws simulation snapshots to the active window. Implementations
// are exclusively owned by the main loop; no call is safe concurrently.
// Dispose is idempotent and must be called before constructing a
// replacement against the same window.
type Renderer interface {
	Name() string
	Render(s sim.Snapshot)
	Resize(width, height int)
	Dispose()
}

// Color is an 8-bit RGBA color shared by both backends.
type Color struct {
	R, G, B, A uint8
}

// Palette holds the two colors the renderers need.
type Palette struct {
	Live       Color
	Background Color
}

// DefaultPalette is soft white on deep black, matching the application
// theme.
func DefaultPalette() Palette {
	return Palette{
		Live:       Color{230, 230, 230, 255},
		Background: Color{10, 10, 10, 255},
	}
}

// rowOrder returns the rows to draw, oldest first with the current
// generation last. The history window is already bounded by the visible
// depth, so the result holds at most M+1 rows.
func rowOrder(s sim.Snapshot) []automaton.Generation {
	hist := s.History
	if len(hist) > s.View.Rows {
		hist = hist[len(hist)-s.View.Rows:]
	}
	rows := make([]automaton.Generation, 0, len(hist)+1)
	rows = append(rows, hist...)
	return append(rows, s.Gen)
}
