package ode

// FwdEuler is the forward Euler rule: one derivative evaluation per
// step, no correction.
type FwdEuler struct{}

func NewFwdEuler() *FwdEuler {
	return &FwdEuler{}
}

func (e *FwdEuler) Name() string { return "fwdeuler" }

func (e *FwdEuler) Advance(f Deriv, prev State, t, h float64) (State, error) {
	dx := f(prev, t-h)
	if err := checkDim(dx, prev); err != nil {
		return nil, err
	}
	next := make(State, len(prev))
	for i := range prev {
		next[i] = prev[i] + h*dx[i]
	}
	return next, nil
}
