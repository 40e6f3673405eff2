package llg

import (
	"fmt"
	"math"
)

// MagParams holds the magnetic parameters of one switching experiment.
// H and Hk are the applied and anisotropy field magnitudes, Alpha the
// Gilbert damping constant and Gamma the gyromagnetic ratio. Ms and Mu0
// scale the energy calculations and default to 1 in reduced units.
// Values are never mutated mid-calculation; construct once per experiment.
type MagParams struct {
	H     float64
	Hk    float64
	Alpha float64
	Gamma float64
	Ms    float64
	Mu0   float64
}

// DefaultMagParams returns the reference parameter set in reduced units.
func DefaultMagParams() MagParams {
	return MagParams{H: 2.0, Hk: 1.0, Alpha: 0.5, Gamma: 1.0, Ms: 1.0, Mu0: 1.0}
}

// Validate checks that the closed-form solution is defined for p.
func (p MagParams) Validate() error {
	if p.Alpha <= 0 {
		return fmt.Errorf("%w: alpha = %g, must be > 0", ErrParameterBounds, p.Alpha)
	}
	if p.Gamma == 0 {
		return fmt.Errorf("%w: gamma must be non-zero", ErrParameterBounds)
	}
	if p.H <= p.Hk {
		return fmt.Errorf("%w: H = %g, Hk = %g", ErrSubcriticalField, p.H, p.Hk)
	}
	return nil
}

func (p MagParams) String() string {
	return fmt.Sprintf("H=%g Hk=%g alpha=%g gamma=%g", p.H, p.Hk, p.Alpha, p.Gamma)
}

// SphPoint is a direction in spherical polar coordinates. For magnetization
// states R is always 1. Azi is kept in [0, 2pi), Pol in (0, pi) for any
// state reachable by the switching formulas.
type SphPoint struct {
	R   float64
	Azi float64
	Pol float64
}

// NewSphPoint builds a point with the azimuth normalized into [0, 2pi).
func NewSphPoint(r, azi, pol float64) SphPoint {
	return SphPoint{R: r, Azi: NormalizeAngle(azi, 2*math.Pi), Pol: pol}
}

// Cart converts the point to Cartesian coordinates with the polar axis
// along z.
func (s SphPoint) Cart() (x, y, z float64) {
	sp := math.Sin(s.Pol)
	x = s.R * sp * math.Cos(s.Azi)
	y = s.R * sp * math.Sin(s.Azi)
	z = s.R * math.Cos(s.Pol)
	return x, y, z
}

// CartToSph converts a Cartesian vector to spherical coordinates. The
// azimuth is normalized into [0, 2pi).
func CartToSph(x, y, z float64) SphPoint {
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return SphPoint{}
	}
	return SphPoint{
		R:   r,
		Azi: NormalizeAngle(math.Atan2(y, x), 2*math.Pi),
		Pol: math.Acos(z / r),
	}
}

// Trajectory is an ordered sequence of (direction, time) samples sharing a
// single start angle as time-zero reference. Points and Times are index
// aligned.
type Trajectory struct {
	Points []SphPoint
	Times  []float64
}

func (t *Trajectory) Len() int { return len(t.Points) }

// Validate checks the parallel slices are index aligned.
func (t *Trajectory) Validate() error {
	if len(t.Points) != len(t.Times) {
		return fmt.Errorf("%w: %d points, %d times", ErrTrajectoryShape, len(t.Points), len(t.Times))
	}
	return nil
}

// Polars returns the polar angle of every sample.
func (t *Trajectory) Polars() []float64 {
	pols := make([]float64, len(t.Points))
	for i, p := range t.Points {
		pols[i] = p.Pol
	}
	return pols
}

// Azimuths returns the azimuthal angle of every sample.
func (t *Trajectory) Azimuths() []float64 {
	azis := make([]float64, len(t.Points))
	for i, p := range t.Points {
		azis[i] = p.Azi
	}
	return azis
}
