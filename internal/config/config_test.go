package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "contgrowth" {
		t.Errorf("expected model contgrowth, got %s", cfg.Model)
	}
	if cfg.H <= 0 {
		t.Error("h should be positive")
	}
	if cfg.Tmax <= cfg.Tmin {
		t.Error("default span should be non-empty")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	cfg := GetPreset("preypred", "classic")
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Model != "preypred" || loaded.Method != "modeuler" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.Params["alpha"] != 0.1 {
		t.Errorf("expected alpha 0.1, got %g", loaded.Params["alpha"])
	}
	if len(loaded.X0) != 2 {
		t.Errorf("expected 2 initial values, got %v", loaded.X0)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("model: sir\nmethod: rk2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "sir" || cfg.Method != "rk2" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.H != DefaultH {
		t.Errorf("unset fields should keep defaults, h=%g", cfg.H)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("delay", "oscillation")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["t"] != 0.11 {
		t.Errorf("expected delay 0.11, got %g", cfg.Params["t"])
	}

	if GetPreset("delay", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "basic") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("contgrowth")) != 2 {
		t.Error("expected two contgrowth presets")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}
