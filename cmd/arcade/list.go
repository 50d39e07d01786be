package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Window", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "------", "-----")

	for _, g := range games {
		window := "-"
		if g.Windowed {
			window = "yes"
		}
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, g.ID, window, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game, add --window for a desktop window.")
}
