package models

import (
	"fmt"
	"sort"
	"strings"
)

// builders is the closed set of population models. Resolution goes
// through this table only; there is no dynamic lookup.
var builders = map[string]func(Params) (Model, error){
	"contgrowth": NewContGrowth,
	"loggrowth":  NewLogGrowth,
	"preypred":   NewPreyPred,
	"infecdis":   NewInfecDis,
	"sis":        NewSIS,
	"sir":        NewSIR,
	"delay":      NewDelay,
}

// New resolves a model by name. Unknown names fail with the valid
// options spelled out.
func New(name string, p Params) (Model, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown model %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return build(p)
}

// Names lists the registered model names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
