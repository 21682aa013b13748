package models

import "github.com/san-kum/popsim/internal/ode"

// PreyPred is the Lotka-Volterra prey/predator pair:
//
//	dx/dt = alpha*x - beta*x*y
//	dy/dt = delta*x*y - gamma*y
type PreyPred struct {
	Alpha, Beta, Delta, Gamma float64
}

func NewPreyPred(p Params) (Model, error) {
	m := &PreyPred{}
	var err error
	if m.Alpha, err = p.Require("preypred", "alpha"); err != nil {
		return nil, err
	}
	if m.Beta, err = p.Require("preypred", "beta"); err != nil {
		return nil, err
	}
	if m.Delta, err = p.Require("preypred", "delta"); err != nil {
		return nil, err
	}
	if m.Gamma, err = p.Require("preypred", "gamma"); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *PreyPred) Name() string     { return "preypred" }
func (m *PreyPred) Labels() []string { return []string{"prey", "pred"} }

func (m *PreyPred) Deriv(x ode.State, _ float64) ode.State {
	return ode.State{
		m.Alpha*x[0] - m.Beta*x[0]*x[1],
		m.Delta*x[0]*x[1] - m.Gamma*x[1],
	}
}
