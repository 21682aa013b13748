package ode

import (
	"math"
	"testing"
)

func TestGridLength(t *testing.T) {
	tests := []struct {
		tmin, tmax, h float64
		want          int
	}{
		{0, 10, 0.01, 1000},
		{0, 1, 0.1, 10},
		{0, 1, 0.3, 4}, // ceil(1/0.3)
		{2, 5, 0.5, 6},
		{0, 0, 0.01, 0},
		{5, 2, 0.01, 0},
	}

	for _, tt := range tests {
		grid := Grid(tt.tmin, tt.tmax, tt.h)
		if len(grid) != tt.want {
			t.Errorf("Grid(%g,%g,%g): expected %d points, got %d", tt.tmin, tt.tmax, tt.h, tt.want, len(grid))
		}
	}
}

func TestGridStartsAtTmin(t *testing.T) {
	grid := Grid(1.5, 3.0, 0.25)
	if len(grid) == 0 {
		t.Fatal("expected non-empty grid")
	}
	if grid[0] != 1.5 {
		t.Errorf("expected first point 1.5, got %g", grid[0])
	}
	if math.Abs(grid[1]-grid[0]-0.25) > 1e-12 {
		t.Errorf("expected spacing 0.25, got %g", grid[1]-grid[0])
	}
}

func TestGridExcludesTmax(t *testing.T) {
	grid := Grid(0, 1, 0.1)
	last := grid[len(grid)-1]
	if last >= 1.0 {
		t.Errorf("grid should exclude tmax, last point %g", last)
	}
}
