package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows the levels in play order, as loaded from the active config file
with the --difficulty preset applied.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, _, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	if len(cfg.Levels) == 0 {
		fmt.Println("No levels configured.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range cfg.Levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Printf("  %-2s  %-*s  %-5s  %s\n", "#", maxNameLen, "Name", "Speed", "Goal")
	fmt.Printf("  %-2s  %-*s  %-5s  %s\n", "-", maxNameLen, "----", "-----", "----")

	for i, l := range cfg.Levels {
		fmt.Printf("  %-2d  %-*s  %-5.2f  %s\n", i+1, maxNameLen, l.Name, l.Speed, l.Goal())
	}

	fmt.Println()
	fmt.Println("Run 'parkour play --level <#>' to jump straight into a level.")
}
