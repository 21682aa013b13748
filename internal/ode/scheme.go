package ode

import (
	"fmt"
	"sort"
	"strings"
)

// Scheme is one arithmetic rule for advancing the state by a single
// time increment. t is the grid time being stepped onto; the state
// being advanced sits at t-h.
type Scheme interface {
	Name() string
	Advance(f Deriv, prev State, t, h float64) (State, error)
}

// SchemeOptions carries the knobs that only some schemes use.
type SchemeOptions struct {
	Eps     float64 // modeuler convergence tolerance
	MaxIter int     // modeuler corrector iteration cap
}

// DefaultSchemeOptions returns the standard tolerances.
func DefaultSchemeOptions() SchemeOptions {
	return SchemeOptions{Eps: DefaultEps, MaxIter: DefaultMaxIter}
}

var schemeBuilders = map[string]func(SchemeOptions) Scheme{
	"fwdeuler": func(SchemeOptions) Scheme { return NewFwdEuler() },
	"modeuler": func(o SchemeOptions) Scheme { return NewModEuler(o.Eps, o.MaxIter) },
	"rk2":      func(SchemeOptions) Scheme { return NewRK2() },
	"rk4":      func(SchemeOptions) Scheme { return NewRK4() },
}

// NewScheme resolves a scheme by name through a closed table. Unknown
// names fail with the valid options spelled out.
func NewScheme(name string, opts SchemeOptions) (Scheme, error) {
	build, ok := schemeBuilders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scheme %q (valid: %s)", name, strings.Join(SchemeNames(), ", "))
	}
	return build(opts), nil
}

// SchemeNames lists the registered scheme names, sorted.
func SchemeNames() []string {
	names := make([]string, 0, len(schemeBuilders))
	for name := range schemeBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkDim verifies a derivative result against the state it was
// computed from.
func checkDim(dx, x State) error {
	if len(dx) != len(x) {
		return fmt.Errorf("%w: state %d, derivative %d", ErrDimensionMismatch, len(x), len(dx))
	}
	return nil
}
