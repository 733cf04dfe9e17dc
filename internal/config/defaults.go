package config

import (
	_ "embed"
)

//go:embed defaults/isodice.yaml
var defaultIsodiceYAML []byte

// DefaultIsodiceConfig returns the default configuration.
func DefaultIsodiceConfig() IsodiceConfig {
	return IsodiceConfig{
		Timing: TimingConfig{
			TickRate:        60,
			ToggleTicks:     60,
			ParticleTicks:   20,
			ClearDelayTicks: 30,
		},
		Window: WindowConfig{
			Width:  320,
			Height: 180,
			Scale:  4,
			Title:  "Isodice",
		},
	}
}

// fillDefaults replaces unset or invalid values with defaults.
func fillDefaults(cfg *IsodiceConfig) {
	def := DefaultIsodiceConfig()

	if cfg.Timing.TickRate <= 0 {
		cfg.Timing.TickRate = def.Timing.TickRate
	}
	if cfg.Timing.ToggleTicks <= 0 {
		cfg.Timing.ToggleTicks = def.Timing.ToggleTicks
	}
	if cfg.Timing.ParticleTicks <= 0 {
		cfg.Timing.ParticleTicks = def.Timing.ParticleTicks
	}
	if cfg.Timing.ClearDelayTicks <= 0 {
		cfg.Timing.ClearDelayTicks = def.Timing.ClearDelayTicks
	}
	if cfg.Timing.TypeDelayTicks < 0 {
		cfg.Timing.TypeDelayTicks = 0
	}
	if cfg.Levels.Start < 0 {
		cfg.Levels.Start = 0
	}
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = def.Window.Width
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = def.Window.Height
	}
	if cfg.Window.Scale <= 0 {
		cfg.Window.Scale = def.Window.Scale
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = def.Window.Title
	}
}
