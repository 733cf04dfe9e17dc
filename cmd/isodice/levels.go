package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the campaign",
	Long:  `Shows the levels of the built-in campaign, or of the --levels directory.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	loader, err := openLoader(cfg)
	if err != nil {
		fail("%v", err)
	}

	entries := loader.Manifest()
	if len(entries) == 0 {
		fmt.Println("No levels available.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxNameLen, "Name", "Image")
	fmt.Printf("  %-3s  %-*s  %s\n", "-", maxNameLen, "----", "-----")
	for i, e := range entries {
		fmt.Printf("  %-3d  %-*s  %s\n", i+1, maxNameLen, e.Name, e.Image)
	}

	fmt.Println()
	fmt.Println("Run 'isodice play <#>' to start at a level.")
}
