package models

import "github.com/san-kum/popsim/internal/ode"

// SIS is the susceptible-infected-susceptible model; recovered
// individuals return to the susceptible pool:
//
//	dS/dt = -beta*S*I + gamma*I
//	dI/dt = beta*S*I - gamma*I
type SIS struct {
	Beta, Gamma float64
}

func NewSIS(p Params) (Model, error) {
	m := &SIS{}
	var err error
	if m.Beta, err = p.Require("sis", "beta"); err != nil {
		return nil, err
	}
	if m.Gamma, err = p.Require("sis", "gamma"); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *SIS) Name() string     { return "sis" }
func (m *SIS) Labels() []string { return []string{"S", "I"} }

func (m *SIS) Deriv(x ode.State, _ float64) ode.State {
	return ode.State{
		-m.Beta*x[0]*x[1] + m.Gamma*x[1],
		m.Beta*x[0]*x[1] - m.Gamma*x[1],
	}
}
