package models

import "github.com/san-kum/popsim/internal/ode"

// Delay is logistic growth whose feedback term lags by T time units:
//
//	dx/dt = r*x*(1 - x(t-T)/K)
//
// The lagged value comes from the solver's trajectory-so-far; lookups
// earlier than the grid start clamp to the initial condition.
type Delay struct {
	R, T, K float64

	hist ode.History
}

func NewDelay(p Params) (Model, error) {
	m := &Delay{}
	var err error
	if m.R, err = p.Require("delay", "r"); err != nil {
		return nil, err
	}
	if m.T, err = p.Require("delay", "t"); err != nil {
		return nil, err
	}
	if m.K, err = p.Require("delay", "k"); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Delay) Name() string     { return "delay" }
func (m *Delay) Labels() []string { return []string{"P"} }

// Bind attaches the trajectory history the derivative reads from.
func (m *Delay) Bind(h ode.History) { m.hist = h }

func (m *Delay) Deriv(x ode.State, t float64) ode.State {
	past := m.hist.Past(t - m.T)
	out := make(ode.State, len(x))
	for i := range x {
		out[i] = m.R * x[i] * (1 - past[i]/m.K)
	}
	return out
}
