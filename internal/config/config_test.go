package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Topic != "lru" {
		t.Errorf("expected topic lru, got %s", cfg.Topic)
	}
	if cfg.Speed <= 0 || cfg.Speed > 100 {
		t.Errorf("default speed out of range: %d", cfg.Speed)
	}
	if cfg.Quiz.TimeLimitSeconds != 0 {
		t.Error("default quiz should be unlimited")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("drill")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Quiz.Shuffle {
		t.Error("drill preset should shuffle")
	}
	if cfg.Quiz.TimeLimitSeconds != 60 {
		t.Errorf("expected 60s limit, got %d", cfg.Quiz.TimeLimitSeconds)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algowalk.yaml")

	want := DefaultConfig()
	want.Topic = "segtree"
	want.Speed = 80
	want.Quiz.Shuffle = true

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got.Topic != "segtree" || got.Speed != 80 || !got.Quiz.Shuffle {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
