package models

import "github.com/san-kum/popsim/internal/ode"

// SIR is the classic three-compartment epidemic model:
//
//	dS/dt = -beta*S*I
//	dI/dt = beta*S*I - gamma*I
//	dR/dt = gamma*I
type SIR struct {
	Beta, Gamma float64
}

func NewSIR(p Params) (Model, error) {
	m := &SIR{}
	var err error
	if m.Beta, err = p.Require("sir", "beta"); err != nil {
		return nil, err
	}
	if m.Gamma, err = p.Require("sir", "gamma"); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *SIR) Name() string     { return "sir" }
func (m *SIR) Labels() []string { return []string{"S", "I", "R"} }

func (m *SIR) Deriv(x ode.State, _ float64) ode.State {
	return ode.State{
		-m.Beta * x[0] * x[1],
		m.Beta*x[0]*x[1] - m.Gamma*x[1],
		m.Gamma * x[1],
	}
}
