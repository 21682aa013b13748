package models

import "github.com/san-kum/popsim/internal/ode"

// LogGrowth is logistic growth toward a carrying capacity:
// dx/dt = r*x*(1 - x/M).
type LogGrowth struct {
	R float64
	M float64
}

func NewLogGrowth(p Params) (Model, error) {
	r, err := p.Require("loggrowth", "r")
	if err != nil {
		return nil, err
	}
	m, err := p.Require("loggrowth", "m")
	if err != nil {
		return nil, err
	}
	return &LogGrowth{R: r, M: m}, nil
}

func (m *LogGrowth) Name() string     { return "loggrowth" }
func (m *LogGrowth) Labels() []string { return []string{"p"} }

func (m *LogGrowth) Deriv(x ode.State, _ float64) ode.State {
	out := make(ode.State, len(x))
	for i := range x {
		out[i] = m.R * x[i] * (1 - x[i]/m.M)
	}
	return out
}
