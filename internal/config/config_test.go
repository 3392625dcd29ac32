package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/plexus/internal/field"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Field.Count != 60 {
		t.Errorf("expected count 60, got %d", cfg.Field.Count)
	}
	if cfg.Field.MaxDist != 180 {
		t.Errorf("expected max_dist 180, got %f", cfg.Field.MaxDist)
	}
	if cfg.Window.Backend != "" {
		t.Errorf("expected the built-in backend, got %q", cfg.Window.Backend)
	}
}

func TestFieldConfig(t *testing.T) {
	fc, err := DefaultConfig().FieldConfig()
	if err != nil {
		t.Fatalf("convert default config: %v", err)
	}
	want := field.DefaultConfig()
	if fc != want {
		t.Errorf("FieldConfig() = %+v, want %+v", fc, want)
	}
}

func TestFieldConfig_Invalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Field.MaxDist = -1
	if _, err := cfg.FieldConfig(); !errors.Is(err, field.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Field.Color = "cyan"
	if _, err := cfg.FieldConfig(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#00d4ff", color.NRGBA{0, 212, 255, 255}, true},
		{"#05091a", color.NRGBA{5, 9, 26, 255}, true},
		{"#fff", color.NRGBA{255, 255, 255, 255}, true},
		{"00d4ff", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plexus.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Field.Count = 33
	cfg.Field.Color = "#ff0000"
	cfg.Window.Backend = "ebiten"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("field:\n  count: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Field.Count != 12 {
		t.Errorf("expected count 12, got %d", cfg.Field.Count)
	}
	if cfg.Field.MaxDist != 180 || cfg.Window.FPS != 60 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Field.Count != 120 {
		t.Errorf("expected count 120, got %d", cfg.Field.Count)
	}
	cfg.Field.Count = 1
	if Presets["dense"].Field.Count != 120 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		if _, err := GetPreset(name).FieldConfig(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestLoadOver_Preset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("field:\n  speed: 0.9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	base := GetPreset("dense")
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("LoadOver() error = %v", err)
	}
	if cfg.Field.Speed != 0.9 {
		t.Errorf("speed = %v, want 0.9", cfg.Field.Speed)
	}
	if cfg.Field.Count != 120 {
		t.Errorf("preset count lost: %d", cfg.Field.Count)
	}
	if base.Field.Speed == 0.9 {
		t.Error("LoadOver modified base")
	}
}
