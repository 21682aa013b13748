package ode

import "math"

// Grid builds the half-open, evenly spaced time grid [tmin, tmax) with
// spacing h. The first point is exactly tmin; the length is
// ceil((tmax-tmin)/h). A span of zero or less yields an empty grid.
func Grid(tmin, tmax, h float64) []float64 {
	if tmax <= tmin {
		return nil
	}
	n := int(math.Ceil((tmax - tmin) / h))
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = tmin + float64(i)*h
	}
	return grid
}
