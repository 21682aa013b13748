package models

import "github.com/san-kum/popsim/internal/ode"

// InfecDis is the two-compartment outbreak without recovery:
//
//	dS/dt = -beta*S*I
//	dI/dt = beta*S*I
type InfecDis struct {
	Beta float64
}

func NewInfecDis(p Params) (Model, error) {
	beta, err := p.Require("infecdis", "beta")
	if err != nil {
		return nil, err
	}
	return &InfecDis{Beta: beta}, nil
}

func (m *InfecDis) Name() string     { return "infecdis" }
func (m *InfecDis) Labels() []string { return []string{"S", "I"} }

func (m *InfecDis) Deriv(x ode.State, _ float64) ode.State {
	return ode.State{
		-m.Beta * x[0] * x[1],
		m.Beta * x[0] * x[1],
	}
}
