package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/macrospin/internal/llg"
	"github.com/san-kum/macrospin/internal/mallinson"
)

func testTrajectory(t *testing.T) *llg.Trajectory {
	t.Helper()
	rng := mallinson.DefaultRange()
	rng.Steps = 40
	traj, err := mallinson.GenerateDynamics(llg.DefaultMagParams(), rng)
	if err != nil {
		t.Fatal(err)
	}
	return traj
}

func TestSeriesExtractors(t *testing.T) {
	traj := testTrajectory(t)

	pt := PolarVsTime(traj)
	if len(pt) != traj.Len() {
		t.Fatalf("expected %d points, got %d", traj.Len(), len(pt))
	}
	if pt[0].X != 0 || pt[0].Y != traj.Points[0].Pol {
		t.Errorf("first sample should be the start angle at time 0, got %+v", pt[0])
	}

	ap := AziVsPolar(traj)
	if len(ap) != traj.Len() {
		t.Fatalf("expected %d points, got %d", traj.Len(), len(ap))
	}
	if ap[3].X != traj.Points[3].Pol || ap[3].Y != traj.Points[3].Azi {
		t.Errorf("sample mismatch: %+v", ap[3])
	}
}

func TestSeriesToSVG(t *testing.T) {
	traj := testTrajectory(t)
	svg := SeriesToSVG(PolarVsTime(traj), 800, 400, "#00d9ff")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, `width="800" height="400"`) {
		t.Error("dimensions not applied")
	}
	if !strings.Contains(svg, `stroke="#00d9ff"`) {
		t.Error("stroke color not applied")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated document")
	}
	if strings.Count(svg, " L") != traj.Len()-1 {
		t.Errorf("expected %d line segments, got %d", traj.Len()-1, strings.Count(svg, " L"))
	}
}

func TestSeriesToSVGDegenerate(t *testing.T) {
	if got := SeriesToSVG(nil, 800, 400, "#fff"); got != "" {
		t.Errorf("empty series should render nothing, got %q", got)
	}
	if got := SeriesToSVG([]Point{{X: 1, Y: 2}}, 800, 400, "#fff"); got != "" {
		t.Errorf("single point should render nothing, got %q", got)
	}

	// Flat series must not divide by a zero range.
	flat := []Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	svg := SeriesToSVG(flat, 200, 100, "#fff")
	if svg == "" || strings.Contains(svg, "NaN") {
		t.Errorf("flat series mishandled: %q", svg)
	}
}

func TestSavePolarVsTime(t *testing.T) {
	traj := testTrajectory(t)
	path := filepath.Join(t.TempDir(), "polar.png")

	if err := SavePolarVsTime(traj, llg.DefaultMagParams(), path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty plot file")
	}
}

func TestSaveAziVsPolar(t *testing.T) {
	traj := testTrajectory(t)
	path := filepath.Join(t.TempDir(), "phase.png")

	if err := SaveAziVsPolar(traj, llg.DefaultMagParams(), path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}
