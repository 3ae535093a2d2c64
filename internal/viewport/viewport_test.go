package viewport

import (
	"testing"

	"rulescope/internal/automaton"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name                 string
		w, h                 int
		size, margin, render int
		wantCols, wantRows   int
	}{
		{"exact fit", 110, 60, 9, 1, 5, 10, 5},
		{"remainder discarded", 117, 69, 9, 1, 5, 10, 5},
		{"no margin", 100, 50, 10, 0, 0, 10, 5},
		{"tiny surface", 8, 8, 10, 2, 0, 0, 0},
		{"margin eats surface", 30, 30, 4, 0, 20, 0, 0},
	}

	for _, tt := range tests {
		v := Derive(tt.w, tt.h, tt.size, tt.margin, tt.render)
		if v.Cols != tt.wantCols || v.Rows != tt.wantRows {
			t.Errorf("%s: got %dx%d, want %dx%d",
				tt.name, v.Cols, v.Rows, tt.wantCols, tt.wantRows)
		}
	}
}

func TestCellOrigin(t *testing.T) {
	v := Derive(200, 100, 9, 1, 5)
	x, y := v.CellOrigin(0, 0)
	if x != 5 || y != 5 {
		t.Errorf("origin cell at (%d,%d), want (5,5)", x, y)
	}
	x, y = v.CellOrigin(3, 2)
	if x != 35 || y != 25 {
		t.Errorf("cell (3,2) at (%d,%d), want (35,25)", x, y)
	}
}

func TestRecenterGrow(t *testing.T) {
	g := automaton.Generation{true, false, true}
	out := Recenter(g, 7)
	// offset = floor((7-3)/2) = 2
	want := automaton.Generation{false, false, true, false, true, false, false}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("grow: cell %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestRecenterShrink(t *testing.T) {
	g := automaton.Generation{true, false, true, false, true, false}
	out := Recenter(g, 3)
	// offset = floor((3-6)/2) = -2: cells 2..4 survive
	want := automaton.Generation{true, false, true}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("shrink: cell %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestRecenterSameSize(t *testing.T) {
	g := automaton.Generation{true, false, true}
	out := Recenter(g, 3)
	for i := range g {
		if out[i] != g[i] {
			t.Fatalf("same size should be identity, cell %d differs", i)
		}
	}
}
