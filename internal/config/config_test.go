package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadIsodice("")
	if err != nil {
		t.Fatalf("LoadIsodice() failed: %v", err)
	}
	if cfg != DefaultIsodiceConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultIsodiceConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("levels:\n  dir: ./mylevels\n  start: 3\ntiming:\n  toggle_ticks: 90\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadIsodice(path)
	if err != nil {
		t.Fatalf("LoadIsodice() failed: %v", err)
	}
	if cfg.Levels.Dir != "./mylevels" || cfg.Levels.Start != 3 {
		t.Errorf("Levels = %+v", cfg.Levels)
	}
	if cfg.Timing.ToggleTicks != 90 {
		t.Errorf("ToggleTicks = %d, want 90", cfg.Timing.ToggleTicks)
	}

	// Unset values fall back to defaults
	def := DefaultIsodiceConfig()
	if cfg.Timing.TickRate != def.Timing.TickRate {
		t.Errorf("TickRate = %d, want %d", cfg.Timing.TickRate, def.Timing.TickRate)
	}
	if cfg.Window != def.Window {
		t.Errorf("Window = %+v, want %+v", cfg.Window, def.Window)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".isodice", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("timing:\n  particle_ticks: 5\n")
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadIsodice("")
	if err != nil {
		t.Fatalf("LoadIsodice() failed: %v", err)
	}
	if cfg.Timing.ParticleTicks != 5 {
		t.Errorf("ParticleTicks = %d, want 5", cfg.Timing.ParticleTicks)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadIsodice(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timing: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadIsodice(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestFillDefaults(t *testing.T) {
	cfg := IsodiceConfig{
		Levels: LevelsConfig{Start: -2},
		Timing: TimingConfig{ToggleTicks: -1, TypeDelayTicks: -4, ClearDelayTicks: 12},
	}
	fillDefaults(&cfg)

	if cfg.Levels.Start != 0 {
		t.Errorf("Start = %d, want 0", cfg.Levels.Start)
	}
	if cfg.Timing.ToggleTicks != 60 {
		t.Errorf("ToggleTicks = %d, want 60", cfg.Timing.ToggleTicks)
	}
	if cfg.Timing.TypeDelayTicks != 0 {
		t.Errorf("TypeDelayTicks = %d, want 0", cfg.Timing.TypeDelayTicks)
	}
	if cfg.Timing.ClearDelayTicks != 12 {
		t.Errorf("ClearDelayTicks = %d, want 12", cfg.Timing.ClearDelayTicks)
	}
	if cfg.Window.Title != "Isodice" {
		t.Errorf("Title = %q", cfg.Window.Title)
	}
}

func TestApplyIsodicePreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		wantToggle int
		wantType   int
	}{
		{DifficultyEasy, 120, 0},
		{DifficultyNormal, 60, 0},
		{DifficultyHard, 30, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultIsodiceConfig()
			ApplyIsodicePreset(&cfg, tt.preset)
			if cfg.Timing.ToggleTicks != tt.wantToggle {
				t.Errorf("ToggleTicks = %d, want %d", cfg.Timing.ToggleTicks, tt.wantToggle)
			}
			if cfg.Timing.TypeDelayTicks != tt.wantType {
				t.Errorf("TypeDelayTicks = %d, want %d", cfg.Timing.TypeDelayTicks, tt.wantType)
			}
		})
	}
}

func TestApplyPresetKeepsAtLeastOneTick(t *testing.T) {
	cfg := DefaultIsodiceConfig()
	cfg.Timing.ToggleTicks = 1
	ApplyIsodicePreset(&cfg, DifficultyHard)
	if cfg.Timing.ToggleTicks != 1 {
		t.Errorf("ToggleTicks = %d, want 1", cfg.Timing.ToggleTicks)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
