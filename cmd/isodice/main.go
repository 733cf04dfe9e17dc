// isodice is an isometric rolling-die puzzle for the terminal and the desktop.
//
// Usage:
//
//	isodice play [level]     - Play in the terminal
//	isodice window [level]   - Play in a window
//	isodice levels           - List the levels of the campaign
//	isodice check            - Validate every level of the campaign
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: config tick_rate)
//	--config <path>         - Custom config YAML
//	--levels <dir>          - Level directory containing levels.json
//	--log-level <level>     - debug, info, warn or error
//	--difficulty <preset>   - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagLevels     string
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "isodice",
	Short: "Isodice - roll a die across isometric puzzles",
	Long: `Isodice is an isometric puzzle: roll the die onto the goal tile.
The number on the bottom face decides how far the next roll leaps.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  levels   - Show the levels of the campaign
  check    - Validate a level campaign

Examples:
  isodice play
  isodice play 3
  isodice play --pick
  isodice window --difficulty easy
  isodice levels --levels ./mylevels
  isodice check --levels ./mylevels`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config tick_rate)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level directory with levels.json (default: built-in campaign)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
}
