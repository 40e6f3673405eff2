package validate

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/macrospin/internal/energy"
	"github.com/san-kum/macrospin/internal/llg"
	"github.com/san-kum/macrospin/internal/mallinson"
)

// DampingReport summarizes the recovered damping estimates of one
// trajectory against the damping constant that produced it.
type DampingReport struct {
	Alpha   float64
	Mean    float64
	StdDev  float64
	MaxDev  float64
	Tol     float64
	Samples int
	Pass    bool
}

// DampingConsistency recomputes the effective damping along traj from its
// energy balance and checks every estimate against p.Alpha. The tolerance
// is 1/len(times): the discretization error of the recovery is
// proportional to the angular step size.
func DampingConsistency(traj *llg.Trajectory, p llg.MagParams) (*DampingReport, error) {
	if err := traj.Validate(); err != nil {
		return nil, err
	}

	alphas, err := energy.RecomputeAlpha(traj.Points, traj.Times, p)
	if err != nil {
		return nil, err
	}

	rep := &DampingReport{
		Alpha:   p.Alpha,
		Mean:    stat.Mean(alphas, nil),
		StdDev:  stat.StdDev(alphas, nil),
		Tol:     1.0 / float64(len(traj.Times)),
		Samples: len(alphas),
	}
	for _, a := range alphas {
		if dev := math.Abs(a - p.Alpha); dev > rep.MaxDev {
			rep.MaxDev = dev
		}
	}
	rep.Pass = rep.MaxDev < rep.Tol
	return rep, nil
}

// Deviation summarizes how far a trajectory strays from the exact
// solution evaluated at the same polar angles.
type Deviation struct {
	MaxTimeErr float64
	RMSTimeErr float64
	MaxAziErr  float64
	RMSAziErr  float64
	Samples    int
}

// Compare extracts the polar angles of traj, recomputes the exact time
// and azimuth for each, and reports the deviations of the supplied
// trajectory from that prediction. The first sample is the time-zero
// reference. Azimuth errors are measured on the circle, so a wrap does
// not register as a 2pi discrepancy.
func Compare(p llg.MagParams, traj *llg.Trajectory) (*Deviation, error) {
	if err := traj.Validate(); err != nil {
		return nil, err
	}

	times, azis, err := mallinson.EquivalentDynamics(p, traj.Polars())
	if err != nil {
		return nil, err
	}

	dev := &Deviation{Samples: traj.Len()}
	var sumT, sumA float64
	for i := range times {
		dt := math.Abs(traj.Times[i] - traj.Times[0] - times[i])
		da := circDist(traj.Points[i].Azi, azis[i])

		if dt > dev.MaxTimeErr {
			dev.MaxTimeErr = dt
		}
		if da > dev.MaxAziErr {
			dev.MaxAziErr = da
		}
		sumT += dt * dt
		sumA += da * da
	}
	n := float64(len(times))
	dev.RMSTimeErr = math.Sqrt(sumT / n)
	dev.RMSAziErr = math.Sqrt(sumA / n)
	return dev, nil
}

// circDist returns the distance between two angles on the circle, in
// [0, pi].
func circDist(a, b float64) float64 {
	d := llg.NormalizeAngle(a-b, 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
