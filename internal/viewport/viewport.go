// Package viewport maps simulation cell and generation indices to screen
// pixels, and derives grid dimensions from available pixel geometry.
package viewport

import "rulescope/internal/automaton"

// Viewport describes the geometric mapping between the cell grid and the
// output surface. Cols and Rows are derived, never set directly.
type Viewport struct {
	CellSize     int
	CellMargin   int
	RenderMargin int

	// Cols is the visible cell count N, Rows the visible history depth M.
	Cols int
	Rows int

	// Output surface size in pixels.
	Width  int
	Height int
}

// Derive computes a viewport for the given surface size and cell geometry.
// N = floor(available/(cellSize+cellMargin)) on each axis, where available
// excludes the render margin on both sides.
func Derive(width, height, cellSize, cellMargin, renderMargin int) Viewport {
	v := Viewport{
		CellSize:     cellSize,
		CellMargin:   cellMargin,
		RenderMargin: renderMargin,
		Width:        width,
		Height:       height,
	}
	pitch := cellSize + cellMargin
	if pitch <= 0 {
		return v
	}
	if avail := width - 2*renderMargin; avail > 0 {
		v.Cols = avail / pitch
	}
	if avail := height - 2*renderMargin; avail > 0 {
		v.Rows = avail / pitch
	}
	return v
}

// Pitch returns the center-to-center cell spacing in pixels.
func (v Viewport) Pitch() int { return v.CellSize + v.CellMargin }

// CellOrigin returns the top-left pixel of the cell square at the given
// column and display row. The drawn square has side CellSize-1.
func (v Viewport) CellOrigin(col, row int) (x, y int) {
	return v.RenderMargin + col*v.Pitch(), v.RenderMargin + row*v.Pitch()
}

// Recenter fits a generation into a grid of newN cells, preserving live
// cells around the center: offset = floor((newN-oldN)/2). Growing pads both
// edges with dead cells; shrinking clips both edges.
func Recenter(g automaton.Generation, newN int) automaton.Generation {
	if newN < 0 {
		newN = 0
	}
	offset := floorDiv(newN-len(g), 2)
	out := make(automaton.Generation, newN)
	for i := range out {
		if src := i - offset; src >= 0 && src < len(g) {
			out[i] = g[src]
		}
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
