// Package config provides YAML-based configuration loading and timing
// presets for isodice.
package config

// IsodiceConfig contains all configuration for the game and its hosts.
type IsodiceConfig struct {
	Levels LevelsConfig `yaml:"levels"`
	Timing TimingConfig `yaml:"timing"`
	Window WindowConfig `yaml:"window"`
}

// LevelsConfig selects the level campaign.
type LevelsConfig struct {
	Dir   string `yaml:"dir"`   // Level directory with levels.json; built-in campaign when empty
	Start int    `yaml:"start"` // 1-indexed start level, 0 for the first
}

// TimingConfig defines tick-based timings. All values are simulation ticks.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`         // Ticks per second
	ToggleTicks     int `yaml:"toggle_ticks"`      // Timed tile countdown
	ParticleTicks   int `yaml:"particle_ticks"`    // Roll-distance label lifetime
	ClearDelayTicks int `yaml:"clear_delay_ticks"` // Pause before the next level
	TypeDelayTicks  int `yaml:"type_delay_ticks"`  // Caption speed override, 0 keeps the level's
}

// WindowConfig defines the graphical window host.
type WindowConfig struct {
	Width  int    `yaml:"width"`  // Logical width in projected pixels
	Height int    `yaml:"height"` // Logical height in projected pixels
	Scale  int    `yaml:"scale"`  // Window pixels per logical pixel
	Title  string `yaml:"title"`
}
