package ode

// RK4 is the classical fourth-order Runge-Kutta rule: four stages
// weighted 1:2:2:1.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Advance(f Deriv, prev State, t, h float64) (State, error) {
	n := len(prev)
	t0 := t - h

	k1 := f(prev, t0)
	if err := checkDim(k1, prev); err != nil {
		return nil, err
	}

	scratch := make(State, n)
	for i := range prev {
		scratch[i] = prev[i] + h*0.5*k1[i]
	}
	k2 := f(scratch, t0+h*0.5)
	if err := checkDim(k2, prev); err != nil {
		return nil, err
	}

	for i := range prev {
		scratch[i] = prev[i] + h*0.5*k2[i]
	}
	k3 := f(scratch, t0+h*0.5)
	if err := checkDim(k3, prev); err != nil {
		return nil, err
	}

	for i := range prev {
		scratch[i] = prev[i] + h*k3[i]
	}
	k4 := f(scratch, t0+h)
	if err := checkDim(k4, prev); err != nil {
		return nil, err
	}

	next := make(State, n)
	h6 := h / 6.0
	for i := range prev {
		next[i] = prev[i] + h6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return next, nil
}
