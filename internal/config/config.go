package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/macrospin/internal/llg"
	"github.com/san-kum/macrospin/internal/mallinson"
)

// Named defaults for the reference experiment. The start and end angles
// keep clear of the pole singularities at 0 and pi.
const (
	DefaultSteps = 1000
	DefaultH     = 2.0
	DefaultHk    = 1.0
	DefaultAlpha = 0.5
	DefaultGamma = 1.0
)

var (
	DefaultStartAngle = math.Pi / 18
	DefaultEndAngle   = 17 * math.Pi / 18
)

// Config describes one switching experiment: the magnetic parameters and
// the polar-angle sampling of the trajectory.
type Config struct {
	Params ParamsConfig `yaml:"params"`
	Range  RangeConfig  `yaml:"range"`
}

type ParamsConfig struct {
	H     float64 `yaml:"h"`
	Hk    float64 `yaml:"hk"`
	Alpha float64 `yaml:"alpha"`
	Gamma float64 `yaml:"gamma"`
	Ms    float64 `yaml:"ms"`
	Mu0   float64 `yaml:"mu0"`
}

type RangeConfig struct {
	StartAngle float64 `yaml:"start_angle"`
	EndAngle   float64 `yaml:"end_angle"`
	Steps      int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Params: ParamsConfig{
			H:     DefaultH,
			Hk:    DefaultHk,
			Alpha: DefaultAlpha,
			Gamma: DefaultGamma,
			Ms:    1.0,
			Mu0:   1.0,
		},
		Range: RangeConfig{
			StartAngle: DefaultStartAngle,
			EndAngle:   DefaultEndAngle,
			Steps:      DefaultSteps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MagParams converts the config into the immutable parameter value used
// by the calculators. Zero Ms/Mu0 fall back to reduced units.
func (c *Config) MagParams() llg.MagParams {
	p := llg.MagParams{
		H:     c.Params.H,
		Hk:    c.Params.Hk,
		Alpha: c.Params.Alpha,
		Gamma: c.Params.Gamma,
		Ms:    c.Params.Ms,
		Mu0:   c.Params.Mu0,
	}
	if p.Ms == 0 {
		p.Ms = 1.0
	}
	if p.Mu0 == 0 {
		p.Mu0 = 1.0
	}
	return p
}

// SampleRange converts the config into the generator's sampling range.
func (c *Config) SampleRange() mallinson.Range {
	return mallinson.Range{
		Start: c.Range.StartAngle,
		End:   c.Range.EndAngle,
		Steps: c.Range.Steps,
	}
}
