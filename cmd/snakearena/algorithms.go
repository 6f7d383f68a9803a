package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/registry"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List controller algorithms",
	Long:  `Shows every controller that can drive a snake.`,
	Args:  cobra.NoArgs,
	Run:   runAlgorithms,
}

func runAlgorithms(cmd *cobra.Command, args []string) {
	algorithms := registry.List()

	fmt.Println("Available algorithms:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, a := range algorithms {
		if len(a.Name) > maxNameLen {
			maxNameLen = len(a.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, a := range algorithms {
		fmt.Printf("  %-*s  %s\n", maxNameLen, a.Name, a.Description)
	}

	fmt.Println()
	fmt.Println("Use 'snakearena batch --algorithms <name,...>' to compare them.")
}
