package validate

import (
	"math"
	"testing"

	"github.com/san-kum/macrospin/internal/llg"
	"github.com/san-kum/macrospin/internal/mallinson"
)

func generate(t *testing.T, p llg.MagParams) *llg.Trajectory {
	t.Helper()
	traj, err := mallinson.GenerateDynamics(p, mallinson.DefaultRange())
	if err != nil {
		t.Fatal(err)
	}
	return traj
}

func TestDampingConsistencyPasses(t *testing.T) {
	params := []llg.MagParams{
		{H: 2.0, Hk: 1.0, Alpha: 0.5, Gamma: 1.0, Ms: 1, Mu0: 1},
		{H: 1.1, Hk: 1.0, Alpha: 0.01, Gamma: 1.0, Ms: 1, Mu0: 1},
		{H: 2.0, Hk: 1.0, Alpha: 1.5, Gamma: 1.0, Ms: 1, Mu0: 1},
	}

	for _, p := range params {
		traj := generate(t, p)
		rep, err := DampingConsistency(traj, p)
		if err != nil {
			t.Fatalf("alpha=%g: %v", p.Alpha, err)
		}
		if !rep.Pass {
			t.Errorf("alpha=%g: expected pass, max deviation %g against tolerance %g",
				p.Alpha, rep.MaxDev, rep.Tol)
		}
		if rep.Samples != traj.Len()-1 {
			t.Errorf("alpha=%g: expected %d samples, got %d", p.Alpha, traj.Len()-1, rep.Samples)
		}
		if math.Abs(rep.Mean-p.Alpha) >= rep.Tol {
			t.Errorf("alpha=%g: mean estimate %g outside tolerance %g", p.Alpha, rep.Mean, rep.Tol)
		}
	}
}

func TestDampingConsistencyWrongAlphaFails(t *testing.T) {
	// A trajectory generated with one damping constant checked against
	// another is a report with Pass=false, not an error.
	p := llg.DefaultMagParams()
	traj := generate(t, p)

	claimed := p
	claimed.Alpha = 0.45
	rep, err := DampingConsistency(traj, claimed)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Pass {
		t.Error("expected a failing report for a mismatched damping constant")
	}
	if rep.MaxDev < 0.04 {
		t.Errorf("expected a deviation near the 0.05 alpha mismatch, got %g", rep.MaxDev)
	}
}

func TestDampingConsistencyShapeError(t *testing.T) {
	traj := &llg.Trajectory{
		Points: []llg.SphPoint{{R: 1, Azi: 0, Pol: 0.5}},
		Times:  []float64{0, 1},
	}
	if _, err := DampingConsistency(traj, llg.DefaultMagParams()); err == nil {
		t.Error("expected an error for a malformed trajectory")
	}
}

func TestCompareExactTrajectory(t *testing.T) {
	p := llg.DefaultMagParams()
	traj := generate(t, p)

	dev, err := Compare(p, traj)
	if err != nil {
		t.Fatal(err)
	}
	if dev.MaxTimeErr != 0 || dev.MaxAziErr != 0 {
		t.Errorf("exact trajectory should compare cleanly, got time err %g, azi err %g",
			dev.MaxTimeErr, dev.MaxAziErr)
	}
	if dev.Samples != traj.Len() {
		t.Errorf("expected %d samples, got %d", traj.Len(), dev.Samples)
	}
}

func TestComparePerturbedTrajectory(t *testing.T) {
	p := llg.DefaultMagParams()
	traj := generate(t, p)

	for i := range traj.Times {
		traj.Times[i] += 0.01 * float64(i)
	}
	dev, err := Compare(p, traj)
	if err != nil {
		t.Fatal(err)
	}
	if dev.MaxTimeErr < 0.01 {
		t.Errorf("expected the time perturbation to register, got %g", dev.MaxTimeErr)
	}
	if dev.RMSTimeErr <= 0 || dev.RMSTimeErr > dev.MaxTimeErr {
		t.Errorf("rms error %g inconsistent with max error %g", dev.RMSTimeErr, dev.MaxTimeErr)
	}
}

func TestCompareWrongParams(t *testing.T) {
	p := llg.DefaultMagParams()
	traj := generate(t, p)

	other := p
	other.Alpha = 0.01
	other.H = 1.1
	dev, err := Compare(other, traj)
	if err != nil {
		t.Fatal(err)
	}
	if dev.MaxTimeErr == 0 {
		t.Error("different parameters should predict different times")
	}
}

func TestCircDist(t *testing.T) {
	tests := []struct {
		a, b     float64
		expected float64
	}{
		{0, 0, 0},
		{0.1, 2*math.Pi - 0.1, 0.2},
		{math.Pi, 0, math.Pi},
		{1.0, 2.0, 1.0},
	}
	for _, tt := range tests {
		if got := circDist(tt.a, tt.b); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("circDist(%g, %g) = %g, expected %g", tt.a, tt.b, got, tt.expected)
		}
	}
}
