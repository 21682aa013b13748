package storage

import (
	"testing"

	"github.com/san-kum/popsim/internal/experiment"
	"github.com/san-kum/popsim/internal/models"
)

func runAndSave(t *testing.T, st *Store) (string, *experiment.Result, experiment.Config) {
	t.Helper()

	cfg := experiment.Config{
		Model:  "sir",
		Method: "rk4",
		X0:     []float64{999, 1, 0},
		Tmin:   0,
		Tmax:   2,
		H:      0.1,
		Params: models.Params{"beta": 0.00025, "gamma": 0.1},
	}
	result, err := experiment.Run(cfg)
	if err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatal(err)
	}
	return runID, result, cfg
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, result, cfg := runAndSave(t, st)

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Model != cfg.Model || meta.Method != cfg.Method {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Samples != len(result.Trajectory) {
		t.Errorf("expected %d samples, got %d", len(result.Trajectory), meta.Samples)
	}
	if len(meta.Labels) != 3 {
		t.Errorf("expected SIR labels, got %v", meta.Labels)
	}
}

func TestLoadTrajectoryRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, result, _ := runAndSave(t, st)

	times, states, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(times) != len(result.Times) || len(states) != len(result.Trajectory) {
		t.Fatalf("round trip changed lengths: %d/%d vs %d/%d",
			len(times), len(states), len(result.Times), len(result.Trajectory))
	}
	for i := range states {
		for j := range states[i] {
			if states[i][j] != result.Trajectory[i][j] {
				t.Fatalf("value drift at (%d,%d): %g vs %g", i, j, states[i][j], result.Trajectory[i][j])
			}
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}

	runAndSave(t, st)
	runAndSave(t, st)

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("no_such_run"); err == nil {
		t.Fatal("expected error for missing run")
	}
}
