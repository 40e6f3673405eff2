package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/macrospin/internal/llg"
)

// Store persists trajectory runs under a base directory, one
// subdirectory per run id holding metadata.json and trajectory.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata records how a stored trajectory was produced. Source is
// "analytic" for generated runs and "imported" for externally integrated
// trajectories brought in for comparison.
type RunMetadata struct {
	ID         string             `json:"id"`
	Source     string             `json:"source"`
	Timestamp  time.Time          `json:"timestamp"`
	H          float64            `json:"h"`
	Hk         float64            `json:"hk"`
	Alpha      float64            `json:"alpha"`
	Gamma      float64            `json:"gamma"`
	StartAngle float64            `json:"start_angle"`
	EndAngle   float64            `json:"end_angle"`
	Steps      int                `json:"steps"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (s *Store) Save(meta RunMetadata, traj *llg.Trajectory) (string, error) {
	if err := traj.Validate(); err != nil {
		return "", err
	}

	runID := fmt.Sprintf("%s_%d", meta.Source, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Steps = traj.Len()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "azimuth", "polar", "mx", "my", "mz"}); err != nil {
		return "", err
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
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads a stored trajectory back into memory. Only the
// time, azimuth and polar columns are needed; the Cartesian columns are
// derived output for external tools.
func (s *Store) LoadTrajectory(runID string) (*llg.Trajectory, error) {
	return ReadTrajectoryCSV(filepath.Join(s.baseDir, runID, "trajectory.csv"))
}

// ReadTrajectoryCSV parses a trajectory from a CSV file with a header
// row and at least time, azimuth and polar columns, in that order. Used
// both for stored runs and for importing externally integrated
// trajectories.
func ReadTrajectoryCSV(path string) (*llg.Trajectory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &llg.Trajectory{}, nil
	}

	traj := &llg.Trajectory{
		Points: make([]llg.SphPoint, 0, len(records)-1),
		Times:  make([]float64, 0, len(records)-1),
	}
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 3 {
			return nil, fmt.Errorf("row %d: want at least 3 columns, got %d", i, len(rec))
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d time: %w", i, err)
		}
		azi, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d azimuth: %w", i, err)
		}
		pol, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d polar: %w", i, err)
		}
		traj.Points = append(traj.Points, llg.NewSphPoint(1.0, azi, pol))
		traj.Times = append(traj.Times, t)
	}
	return traj, nil
}
