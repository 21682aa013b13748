package models

import "github.com/san-kum/popsim/internal/ode"

// ContGrowth is exponential growth or decay: dX/dt = k*X.
type ContGrowth struct {
	K float64
}

func NewContGrowth(p Params) (Model, error) {
	k, err := p.Require("contgrowth", "k")
	if err != nil {
		return nil, err
	}
	return &ContGrowth{K: k}, nil
}

func (m *ContGrowth) Name() string     { return "contgrowth" }
func (m *ContGrowth) Labels() []string { return []string{"p"} }

func (m *ContGrowth) Deriv(x ode.State, _ float64) ode.State {
	out := make(ode.State, len(x))
	for i := range x {
		out[i] = m.K * x[i]
	}
	return out
}
