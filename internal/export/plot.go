package export

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/macrospin/internal/llg"
)

// SavePolarVsTime writes a PNG of the polar angle against switching time.
func SavePolarVsTime(traj *llg.Trajectory, params llg.MagParams, path string) error {
	return savePlot(PolarVsTime(traj),
		"Polar angle vs time for "+params.String(),
		"time", "polar angle (rad)", path)
}

// SaveAziVsPolar writes a PNG of the wrapped azimuth against polar angle.
func SaveAziVsPolar(traj *llg.Trajectory, params llg.MagParams, path string) error {
	return savePlot(AziVsPolar(traj),
		"Azimuth vs polar angle for "+params.String(),
		"polar angle (rad)", "azimuth (rad)", path)
}

func savePlot(points []Point, title, xLabel, yLabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
