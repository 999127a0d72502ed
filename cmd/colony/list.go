package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colony/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all map presets",
	Long:  `Shows a list of all map presets with their grid sizes.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-16s  %-9s  %s\n", maxIDLen, "ID", "Title", "Grid", "World")
	fmt.Printf("  %-*s  %-16s  %-9s  %s\n", maxIDLen, "--", "-----", "----", "-----")

	for _, p := range presets {
		grid := fmt.Sprintf("%dx%d", p.Cols(), p.Rows())
		world := fmt.Sprintf("%dx%d", p.Width, p.Height)
		fmt.Printf("  %-*s  %-16s  %-9s  %s\n", maxIDLen, p.ID, p.Title, grid, world)
	}

	fmt.Println()
	fmt.Println("Run 'colony play <id>' to start a session.")
}
