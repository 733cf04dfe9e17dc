package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/isodice/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window [level]",
	Short: "Play in a desktop window",
	Long: `Open the campaign in a window, optionally from a 1-indexed level.
The window size and scale come from the window section of the config.

Controls:
  Arrows/WASD  - Roll the die
  R/Space      - Reset the level
  P/Esc        - Pause
  Q            - Quit`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	loader, err := openLoader(cfg)
	if err != nil {
		fail("%v", err)
	}
	start, err := startLevel(args, cfg, loader.Count())
	if err != nil {
		fail("%v", err)
	}

	game := newGame(cfg, loader, start, logger)
	logger.Info("opening window", "w", cfg.Window.Width, "h", cfg.Window.Height, "scale", cfg.Window.Scale)

	if err := gui.Run(game, cfg.Window, cfg.Timing.TickRate, logger); err != nil {
		fail("running game: %v", err)
	}
}
