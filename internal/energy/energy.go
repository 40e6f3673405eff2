package energy

import (
	"fmt"
	"math"

	"github.com/san-kum/macrospin/internal/llg"
)

// Zeeman returns the Zeeman energy of state s for a field of magnitude
// p.H applied antiparallel to the polar axis, the configuration that
// drives switching from small polar angles toward pi.
func Zeeman(s llg.SphPoint, p llg.MagParams) float64 {
	return p.Mu0 * p.Ms * p.H * math.Cos(s.Pol)
}

// Anisotropy returns the uniaxial anisotropy energy of state s, easy axis
// along the polar axis, K1 = mu0*Ms*Hk/2.
func Anisotropy(s llg.SphPoint, p llg.MagParams) float64 {
	sp := math.Sin(s.Pol)
	return 0.5 * p.Mu0 * p.Ms * p.Hk * sp * sp
}

// State returns the total reduced energy of a macrospin state. Exchange
// and magnetostatic contributions are constant for a uniform unit
// magnetization and are omitted.
func State(s llg.SphPoint, p llg.MagParams) float64 {
	return Zeeman(s, p) + Anisotropy(s, p)
}

// RecomputeAlpha recovers one effective damping estimate per consecutive
// sample pair from the energy balance of the LLG equation,
//
//	dE/dt = -(alpha mu0 Ms / gamma) |dm/dt|^2,
//
// with |dm|^2 approximated by the angular path element
// dpol^2 + sin^2(pol_mid) dazi^2. The azimuthal difference is unwrapped
// assuming monotone precession, which requires per-step |dazi| < pi;
// sampling must be fine enough for the damping at hand.
func RecomputeAlpha(points []llg.SphPoint, times []float64, p llg.MagParams) ([]float64, error) {
	if len(points) != len(times) {
		return nil, fmt.Errorf("%w: %d points, %d times", llg.ErrTrajectoryShape, len(points), len(times))
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples", llg.ErrSampleCount)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	alphas := make([]float64, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]

		dE := State(b, p) - State(a, p)
		dt := times[i+1] - times[i]
		if dt == 0 {
			return nil, fmt.Errorf("%w: repeated time at sample %d", llg.ErrTrajectoryShape, i)
		}

		dPol := b.Pol - a.Pol
		dAzi := b.Azi - a.Azi
		// Precession decreases the azimuth; a positive difference is a
		// wrap over 2pi.
		if dAzi > 0 {
			dAzi -= 2 * math.Pi
		}

		mid := math.Sin(0.5 * (a.Pol + b.Pol))
		arc2 := dPol*dPol + mid*mid*dAzi*dAzi
		if arc2 == 0 {
			return nil, fmt.Errorf("%w: repeated state at sample %d", llg.ErrTrajectoryShape, i)
		}

		alphas[i] = -p.Gamma * dE * dt / (p.Mu0 * p.Ms * arc2)
	}
	return alphas, nil
}
