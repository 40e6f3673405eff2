package mallinson

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/macrospin/internal/llg"
)

// Range describes the polar-angle sampling of one switching event.
type Range struct {
	Start float64
	End   float64
	Steps int
}

// DefaultRange spans pi/18 to 17pi/18 in 1000 samples, keeping clear of
// the pole singularities at 0 and pi.
func DefaultRange() Range {
	return Range{Start: math.Pi / 18, End: 17 * math.Pi / 18, Steps: 1000}
}

func (r Range) validate() error {
	if r.Steps < 1 {
		return fmt.Errorf("%w: got %d", llg.ErrSampleCount, r.Steps)
	}
	if !llg.ValidPolar(r.Start) || !llg.ValidPolar(r.End) {
		return fmt.Errorf("%w: range [%g, %g]", llg.ErrPolarDomain, r.Start, r.End)
	}
	return nil
}

func checkAngles(pStart, pNow float64) error {
	if !llg.ValidPolar(pStart) || !llg.ValidPolar(pNow) {
		return fmt.Errorf("%w: pStart=%g pNow=%g", llg.ErrPolarDomain, pStart, pNow)
	}
	if pNow == math.Pi/2 {
		return fmt.Errorf("%w: switching time diverges toward the equator", llg.ErrEquatorialAngle)
	}
	return nil
}

// SwitchingTime returns the time taken for the magnetization to rotate
// from polar angle pStart to pNow under parameters p. The result is zero
// when pNow == pStart and strictly increases with pNow.
func SwitchingTime(p llg.MagParams, pStart, pNow float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := checkAngles(pStart, pNow); err != nil {
		return 0, err
	}

	H, Hk := p.H, p.Hk

	prefactor := (p.Alpha*p.Alpha + 1) / (p.Gamma * p.Alpha) / (H*H - Hk*Hk)

	a := H * math.Log(math.Tan(pNow/2)/math.Tan(pStart/2))
	b := Hk * math.Log((H-Hk*math.Cos(pStart))/(H-Hk*math.Cos(pNow)))
	c := Hk * math.Log(math.Sin(pNow)/math.Sin(pStart))

	return prefactor * (a + b + c), nil
}

// Azimuthal returns the azimuthal rotation accumulated while the polar
// angle moves from pStart to pNow, wrapped into [0, 2pi). The raw
// precession angle is unbounded; the wrap is deliberate since azimuth is
// a cyclic quantity.
func Azimuthal(p llg.MagParams, pStart, pNow float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := checkAngles(pStart, pNow); err != nil {
		return 0, err
	}

	raw := (-1 / p.Alpha) * math.Log(math.Tan(pNow/2)/math.Tan(pStart/2))
	return llg.NormalizeAngle(raw, 2*math.Pi), nil
}

// GenerateDynamics samples rng.Steps equally spaced polar angles from
// rng.Start to rng.End inclusive and returns the exact trajectory: one
// unit direction and one switching time per sample, both referenced to
// rng.Start. Ordering is monotone in polar angle and therefore in time.
func GenerateDynamics(p llg.MagParams, rng Range) (*llg.Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := rng.validate(); err != nil {
		return nil, err
	}

	var pols []float64
	if rng.Steps == 1 {
		pols = []float64{rng.Start}
	} else {
		pols = floats.Span(make([]float64, rng.Steps), rng.Start, rng.End)
	}

	traj := &llg.Trajectory{
		Points: make([]llg.SphPoint, 0, len(pols)),
		Times:  make([]float64, 0, len(pols)),
	}
	for _, pol := range pols {
		azi, err := Azimuthal(p, rng.Start, pol)
		if err != nil {
			return nil, err
		}
		t, err := SwitchingTime(p, rng.Start, pol)
		if err != nil {
			return nil, err
		}
		traj.Points = append(traj.Points, llg.NewSphPoint(1.0, azi, pol))
		traj.Times = append(traj.Times, t)
	}
	return traj, nil
}

// EquivalentDynamics maps an externally supplied ordered polar-angle
// sequence to the exact times and azimuths each sample should correspond
// to. The first element is treated as the reference start angle, so a
// numerically integrated trajectory can be overlaid directly against the
// analytic prediction.
func EquivalentDynamics(p llg.MagParams, polars []float64) (times, azis []float64, err error) {
	if len(polars) == 0 {
		return nil, nil, fmt.Errorf("%w: empty polar sequence", llg.ErrSampleCount)
	}
	start := polars[0]

	times = make([]float64, len(polars))
	azis = make([]float64, len(polars))
	for i, pol := range polars {
		if times[i], err = SwitchingTime(p, start, pol); err != nil {
			return nil, nil, err
		}
		if azis[i], err = Azimuthal(p, start, pol); err != nil {
			return nil, nil, err
		}
	}
	return times, azis, nil
}
