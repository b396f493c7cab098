package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List available difficulties",
	Long:  `Shows every difficulty with the ID its scores are stored under.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	variants := t2048.Variants()

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.GameID))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Name", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "----", "-----")

	for _, v := range variants {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, v.GameID, v.Name, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play --difficulty <name>' to play a mode.")
}
