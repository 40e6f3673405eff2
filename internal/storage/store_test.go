package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/macrospin/internal/llg"
	"github.com/san-kum/macrospin/internal/mallinson"
)

func testTrajectory(t *testing.T) *llg.Trajectory {
	t.Helper()
	rng := mallinson.DefaultRange()
	rng.Steps = 50
	traj, err := mallinson.GenerateDynamics(llg.DefaultMagParams(), rng)
	require.NoError(t, err)
	return traj
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Init())

	traj := testTrajectory(t)
	meta := RunMetadata{
		Source: "analytic",
		H:      2.0, Hk: 1.0, Alpha: 0.5, Gamma: 1.0,
		StartAngle: traj.Points[0].Pol,
		EndAngle:   traj.Points[traj.Len()-1].Pol,
		Metrics:    map[string]float64{"switching_time": traj.Times[traj.Len()-1]},
	}

	runID, err := store.Save(meta, traj)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(runID, "analytic_"))

	loaded, err := store.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, loaded.ID)
	assert.Equal(t, traj.Len(), loaded.Steps)
	assert.Equal(t, meta.Alpha, loaded.Alpha)
	assert.Equal(t, meta.Metrics, loaded.Metrics)

	back, err := store.LoadTrajectory(runID)
	require.NoError(t, err)
	require.Equal(t, traj.Len(), back.Len())
	for i := range traj.Times {
		assert.Equal(t, traj.Times[i], back.Times[i], "time %d", i)
		assert.Equal(t, traj.Points[i].Azi, back.Points[i].Azi, "azimuth %d", i)
		assert.Equal(t, traj.Points[i].Pol, back.Points[i].Pol, "polar %d", i)
	}
}

func TestStoreSaveRejectsMalformed(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Init())

	bad := &llg.Trajectory{
		Points: []llg.SphPoint{{R: 1, Azi: 0, Pol: 0.5}},
		Times:  []float64{0, 1},
	}
	_, err := store.Save(RunMetadata{Source: "analytic"}, bad)
	assert.ErrorIs(t, err, llg.ErrTrajectoryShape)
}

func TestStoreList(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Init())

	runs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	runID, err := store.Save(RunMetadata{Source: "analytic"}, testTrajectory(t))
	require.NoError(t, err)

	runs, err = store.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID)
}

func TestStoreListMissingBaseDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-created"))
	runs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestReadTrajectoryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traj.csv")
	data := "time,azimuth,polar\n0,0.1,0.2\n1.5,0.3,0.4\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	traj, err := ReadTrajectoryCSV(path)
	require.NoError(t, err)
	require.Equal(t, 2, traj.Len())
	assert.Equal(t, 1.5, traj.Times[1])
	assert.Equal(t, 0.3, traj.Points[1].Azi)
	assert.Equal(t, 0.4, traj.Points[1].Pol)
	assert.Equal(t, 1.0, traj.Points[0].R)
}

func TestReadTrajectoryCSVErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadTrajectoryCSV(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	short := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(short, []byte("time,azimuth,polar\n0,0.1\n"), 0644))
	_, err = ReadTrajectoryCSV(short)
	assert.ErrorContains(t, err, "columns")

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("time,azimuth,polar\nx,0.1,0.2\n"), 0644))
	_, err = ReadTrajectoryCSV(bad)
	assert.ErrorContains(t, err, "time")
}

func TestReadTrajectoryCSVHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("time,azimuth,polar\n"), 0644))

	traj, err := ReadTrajectoryCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 0, traj.Len())
}

func TestExportJSON(t *testing.T) {
	traj := testTrajectory(t)
	meta := RunMetadata{ID: "analytic_1", Source: "analytic", Alpha: 0.5}

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, meta, traj))

	var out RunExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "analytic_1", out.Meta.ID)
	assert.Len(t, out.Times, traj.Len())
	assert.Len(t, out.Azimuths, traj.Len())
	assert.Equal(t, traj.Polars(), out.Polars)
}

func TestExportCSV(t *testing.T) {
	traj := testTrajectory(t)

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, traj))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, traj.Len()+1)
	assert.Equal(t, "time,azimuth,polar,mx,my,mz", lines[0])
}
