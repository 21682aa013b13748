package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/popsim/internal/experiment"
	"github.com/san-kum/popsim/internal/models"
)

func TestWritePNG(t *testing.T) {
	res, err := experiment.Run(experiment.Config{
		Model:  "preypred",
		Method: "rk4",
		X0:     []float64{40, 9},
		Tmin:   0,
		Tmax:   10,
		H:      0.1,
		Params: models.Params{"alpha": 0.1, "beta": 0.02, "delta": 0.01, "gamma": 0.1},
	})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "preypred.png")
	if err := WritePNG(path, "prey/predator", res); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestWritePNGEmptyResult(t *testing.T) {
	err := WritePNG(filepath.Join(t.TempDir(), "x.png"), "empty", &experiment.Result{})
	if err == nil {
		t.Fatal("expected error for empty result")
	}
}
