package config

import "math"

// Presets mirror the parameter variations used to validate the solver:
// the reference setup, a barely supercritical field with weak damping, a
// softened anisotropy and an overdamped case.
var Presets = map[string]*Config{
	"reference": {
		Params: ParamsConfig{H: 2.0, Hk: 1.0, Alpha: 0.5, Gamma: 1.0, Ms: 1.0, Mu0: 1.0},
		Range:  RangeConfig{StartAngle: math.Pi / 18, EndAngle: 17 * math.Pi / 18, Steps: 1000},
	},
	"low_damping": {
		Params: ParamsConfig{H: 1.1, Hk: 1.0, Alpha: 0.01, Gamma: 1.0, Ms: 1.0, Mu0: 1.0},
		Range:  RangeConfig{StartAngle: math.Pi / 18, EndAngle: 17 * math.Pi / 18, Steps: 1000},
	},
	"soft_anisotropy": {
		Params: ParamsConfig{H: 2.0, Hk: 0.6, Alpha: 0.5, Gamma: 1.0, Ms: 1.0, Mu0: 1.0},
		Range:  RangeConfig{StartAngle: math.Pi / 18, EndAngle: 17 * math.Pi / 18, Steps: 1000},
	},
	"overdamped": {
		Params: ParamsConfig{H: 2.0, Hk: 1.0, Alpha: 1.5, Gamma: 1.0, Ms: 1.0, Mu0: 1.0},
		Range:  RangeConfig{StartAngle: math.Pi / 18, EndAngle: 17 * math.Pi / 18, Steps: 1000},
	},
	"late_start": {
		Params: ParamsConfig{H: 2.0, Hk: 1.0, Alpha: 0.5, Gamma: 1.0, Ms: 1.0, Mu0: 1.0},
		Range:  RangeConfig{StartAngle: 6 * math.Pi / 18, EndAngle: 17 * math.Pi / 18, Steps: 1000},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
