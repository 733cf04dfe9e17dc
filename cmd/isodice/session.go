package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/isodice/internal/config"
	"github.com/vovakirdan/isodice/internal/games/isodice"
	"github.com/vovakirdan/isodice/internal/games/isodice/levels"
)

// logFileName is the terminal host's log inside ~/.isodice.
const logFileName = "isodice.log"

// loadConfig reads the config and applies the global flags.
func loadConfig() (config.IsodiceConfig, error) {
	cfg, err := config.LoadIsodice(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyIsodicePreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagLevels != "" {
		cfg.Levels.Dir = flagLevels
	}
	return cfg, nil
}

// openLoader opens the configured level directory, or the built-in campaign.
func openLoader(cfg config.IsodiceConfig) (*levels.Loader, error) {
	if cfg.Levels.Dir == "" {
		return levels.Default()
	}
	return levels.Dir(cfg.Levels.Dir)
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "isodice",
	})
	logger.SetLevel(level)
	return logger, nil
}

// openLogFile opens ~/.isodice/isodice.log for appending. The terminal host
// cannot log to stderr while it owns the alt screen.
func openLogFile() (*os.File, error) {
	dir := config.HomeDir()
	if dir == "" {
		return nil, fmt.Errorf("no home directory for %s", logFileName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// startLevel resolves the 1-indexed start level from args or config to a
// 0-indexed level.
func startLevel(args []string, cfg config.IsodiceConfig, count int) (int, error) {
	start := cfg.Levels.Start
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("invalid level %q: %w", args[0], err)
		}
		start = n
	}
	if start == 0 {
		return 0, nil
	}
	if start < 1 || start > count {
		return 0, fmt.Errorf("level %d out of range 1..%d", start, count)
	}
	return start - 1, nil
}

// newGame builds a session from the config.
func newGame(cfg config.IsodiceConfig, loader *levels.Loader, start int, logger *log.Logger) *isodice.Game {
	return isodice.New(isodice.Options{
		Loader:          loader,
		StartLevel:      start,
		ToggleTicks:     cfg.Timing.ToggleTicks,
		ParticleTicks:   cfg.Timing.ParticleTicks,
		ClearDelayTicks: cfg.Timing.ClearDelayTicks,
		TypeDelayTicks:  cfg.Timing.TypeDelayTicks,
		Logger:          logger,
	})
}

// fail prints an error and exits, as every command does on failure.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
