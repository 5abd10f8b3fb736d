package config

import (
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Frames < 3 {
		t.Error("frames should be at least 3")
	}
	if cfg.Loops < 1 {
		t.Error("loops should be at least 1")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.yaml")

	cfg := DefaultConfig()
	cfg.Fluidity = 0.77
	cfg.Center = CenterConfig{X: 12, Y: -8}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Fluidity != 0.77 {
		t.Errorf("expected fluidity 0.77, got %f", loaded.Fluidity)
	}
	if loaded.Center.X != 12 || loaded.Center.Y != -8 {
		t.Errorf("center mismatch: %+v", loaded.Center)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	a := GetPreset("bouncy")
	if a == nil {
		t.Fatal("expected preset, got nil")
	}

	a.Fluidity = 0.99
	b := GetPreset("bouncy")
	if b.Fluidity == 0.99 {
		t.Error("mutating a preset copy must not affect the registry")
	}
}

func TestGetPresetUnknown(t *testing.T) {
	if GetPreset("nope") != nil {
		t.Error("unknown preset should return nil")
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("presets should be sorted: %v", names)
	}
}

func TestConfigInput(t *testing.T) {
	cfg := GetPreset("double")
	in := cfg.Input()

	if in.Loops != 2 {
		t.Errorf("expected 2 loops, got %d", in.Loops)
	}
	if in.FrameCount != cfg.Frames {
		t.Errorf("frame count mismatch: %d vs %d", in.FrameCount, cfg.Frames)
	}
}
