// Package analysis computes descriptive statistics over finished
// trajectories.
package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/popsim/internal/experiment"
)

// Summary describes one compartment over a whole run.
type Summary struct {
	Label string
	Min   float64
	Max   float64
	Mean  float64
	Final float64
}

// Summarize produces one Summary per compartment.
func Summarize(res *experiment.Result) []Summary {
	if len(res.Trajectory) == 0 {
		return nil
	}

	dim := len(res.Trajectory[0])
	out := make([]Summary, 0, dim)
	for i := 0; i < dim; i++ {
		series := res.Series(i)
		label := ""
		if i < len(res.Labels) {
			label = res.Labels[i]
		}
		out = append(out, Summary{
			Label: label,
			Min:   floats.Min(series),
			Max:   floats.Max(series),
			Mean:  stat.Mean(series, nil),
			Final: series[len(series)-1],
		})
	}
	return out
}

// Peak finds the index and value of a compartment's maximum, useful
// for reporting when an epidemic crests.
func Peak(res *experiment.Result, idx int) (int, float64) {
	series := res.Series(idx)
	if len(series) == 0 {
		return -1, 0
	}
	at := floats.MaxIdx(series)
	return at, series[at]
}
