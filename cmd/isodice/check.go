package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a level campaign",
	Long: `Loads every level of the campaign and reports the ones that fail:
missing or undecodable images, invalid die layouts, or no start tile.`,
	Run: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	loader, err := openLoader(cfg)
	if err != nil {
		fail("%v", err)
	}

	if err := loader.Check(); err != nil {
		fail("campaign has broken levels:\n%v", err)
	}
	fmt.Printf("%d levels OK\n", loader.Count())
}
