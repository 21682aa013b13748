package config

// Presets are the stock demonstration scenarios, one per model family.
var Presets = map[string]map[string]*Config{
	"contgrowth": {
		"basic": {
			Model: "contgrowth", Method: "rk4", Tmin: 0, Tmax: 10, H: 0.01,
			X0: []float64{40}, Params: map[string]float64{"k": 0.25},
		},
		"decay": {
			Model: "contgrowth", Method: "rk4", Tmin: 0, Tmax: 10, H: 0.01,
			X0: []float64{40}, Params: map[string]float64{"k": -0.25},
		},
	},
	"loggrowth": {
		"decline": {
			Model: "loggrowth", Method: "rk4", Tmin: 0, Tmax: 10, H: 0.01,
			X0: []float64{140}, Params: map[string]float64{"m": 3540, "r": -0.04},
		},
		"saturate": {
			Model: "loggrowth", Method: "rk4", Tmin: 0, Tmax: 50, H: 0.01,
			X0: []float64{10}, Params: map[string]float64{"m": 500, "r": 0.3},
		},
	},
	"preypred": {
		"classic": {
			Model: "preypred", Method: "modeuler", Tmin: 0, Tmax: 100, H: 0.01,
			X0: []float64{40, 9},
			Params: map[string]float64{
				"alpha": 0.1, "beta": 0.02, "delta": 0.01, "gamma": 0.1,
			},
		},
	},
	"infecdis": {
		"outbreak": {
			Model: "infecdis", Method: "modeuler", Tmin: 0, Tmax: 200, H: 0.01,
			X0: []float64{999, 1}, Params: map[string]float64{"beta": 0.00025},
		},
	},
	"sis": {
		"endemic": {
			Model: "sis", Method: "modeuler", Tmin: 0, Tmax: 200, H: 0.01,
			X0: []float64{999, 1}, Params: map[string]float64{"beta": 0.00025, "gamma": 0.1},
		},
	},
	"sir": {
		"epidemic": {
			Model: "sir", Method: "modeuler", Tmin: 0, Tmax: 200, H: 0.01,
			X0: []float64{999, 1, 0}, Params: map[string]float64{"beta": 0.00025, "gamma": 0.1},
		},
	},
	"delay": {
		"oscillation": {
			Model: "delay", Method: "fwdeuler", Tmin: 0, Tmax: 30, H: 0.05,
			X0: []float64{0.8}, Params: map[string]float64{"r": 12, "t": 0.11, "k": 3},
		},
	},
}

// GetPreset returns a named preset, or nil when either key is unknown.
func GetPreset(model, name string) *Config {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	return group[name]
}

// ListPresets names the presets available for a model.
func ListPresets(model string) []string {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
