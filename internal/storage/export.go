package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/macrospin/internal/llg"
)

// RunExport is the JSON shape emitted by export commands.
type RunExport struct {
	Meta     RunMetadata `json:"meta"`
	Times    []float64   `json:"times"`
	Azimuths []float64   `json:"azimuths"`
	Polars   []float64   `json:"polars"`
}

// ExportJSON writes a run and its trajectory as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, traj *llg.Trajectory) error {
	out := RunExport{
		Meta:     meta,
		Times:    traj.Times,
		Azimuths: traj.Azimuths(),
		Polars:   traj.Polars(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExportCSV writes a trajectory in the same column layout used on disk.
func ExportCSV(w io.Writer, traj *llg.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time", "azimuth", "polar", "mx", "my", "mz"}); err != nil {
		return err
	}
	for i, pt := range traj.Points {
		x, y, z := pt.Cart()
		row := []string{
			strconv.FormatFloat(traj.Times[i], 'g', 17, 64),
			strconv.FormatFloat(pt.Azi, 'g', 17, 64),
			strconv.FormatFloat(pt.Pol, 'g', 17, 64),
			strconv.FormatFloat(x, 'f', 6, 64),
			strconv.FormatFloat(y, 'f', 6, 64),
			strconv.FormatFloat(z, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
