package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"rulescope/internal/sim"
)

// CPU is the raster backend: every call redraws the full visible history
// with one rectangle per live cell. O(N*M) fills, no incremental diffing.
type CPU struct {
	pal      Palette
	width    int
	height   int
	disposed bool
}

// NewCPU constructs the raster backend. It cannot fail.
func NewCPU(pal Palette) *CPU {
	return &CPU{pal: pal}
}

func (r *CPU) Name() string { return "cpu" }

// Render clears the surface and draws the history window oldest at the top
// with the current generation as the bottom row of the block.
func (r *CPU) Render(s sim.Snapshot) {
	if r.disposed {
		panic("render: cpu renderer used after dispose")
	}
	rl.ClearBackground(rlColor(r.pal.Background))

	side := int32(s.View.CellSize - 1)
	if side <= 0 {
		return
	}
	live := rlColor(r.pal.Live)
	for row, gen := range rowOrder(s) {
		for col, alive := range gen {
			if !alive {
				continue
			}
			x, y := s.View.CellOrigin(col, row)
			rl.DrawRectangle(int32(x), int32(y), side, side, live)
		}
	}
}

// Resize records the new surface size. raylib rescales the backing store
// for the window's pixel density itself.
func (r *CPU) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Dispose releases the surface reference. Safe to call repeatedly.
func (r *CPU) Dispose() {
	r.disposed = true
}

func rlColor(c Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
