package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/isodice/internal/core"
	"github.com/vovakirdan/isodice/internal/platform/tui"
)

var flagPick bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play in the terminal",
	Long: `Play the campaign in the terminal, optionally from a 1-indexed level.

Controls:
  Arrows/WASD  - Roll the die
  R/Space      - Reset the level
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot to ~/.isodice/screenshots
  Q/Ctrl+C     - Quit

Logs are written to ~/.isodice/isodice.log.

Examples:
  isodice play
  isodice play 2
  isodice play --pick
  isodice play --difficulty hard --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the start level from a list")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", logErr)
	}
	logger, err := newLogger(logOut)
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

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagPick {
		index, ok, pickErr := tui.RunPicker(loader.Manifest(), width, height)
		if pickErr != nil {
			fail("%v", pickErr)
		}
		if !ok {
			return
		}
		start = index
	}

	game := newGame(cfg, loader, start, logger)
	logger.Info("starting terminal session", "levels", loader.Count(), "start", start+1, "tps", cfg.Timing.TickRate)

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
	}
	if err := tui.Run(game, runtime, logger); err != nil {
		fail("running game: %v", err)
	}
}
