package config

import "fmt"

// DifficultyPreset represents a named timing preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ToggleScaleForPreset returns the factor applied to the timed tile countdown.
func ToggleScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 2.0
	case DifficultyHard:
		return 0.5
	default:
		return 1.0
	}
}

// ApplyIsodicePreset modifies the config based on a difficulty preset.
// Easy doubles the time a timed tile holds, hard halves it.
func ApplyIsodicePreset(cfg *IsodiceConfig, preset DifficultyPreset) {
	ticks := int(float64(cfg.Timing.ToggleTicks) * ToggleScaleForPreset(preset))
	if ticks < 1 {
		ticks = 1
	}
	cfg.Timing.ToggleTicks = ticks

	// Let captions finish quickly on hard; the player already knows the rules.
	if preset == DifficultyHard && cfg.Timing.TypeDelayTicks == 0 {
		cfg.Timing.TypeDelayTicks = 1
	}
}
