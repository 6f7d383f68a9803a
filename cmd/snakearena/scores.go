package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [single|multi]",
	Short: "Show high scores",
	Long: `Display the top 10 human scores for a mode (default: single).

Examples:
  snakearena scores
  snakearena scores multi
  snakearena scores single --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode := config.ModeSingle
	if len(args) == 1 {
		mode = config.GameMode(args[0])
	}
	if mode != config.ModeSingle && mode != config.ModeMulti {
		return fmt.Errorf("unknown mode %q, expected single or multi", mode)
	}

	// Open score storage
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(string(mode)); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores.\n", mode)
		return nil
	}

	// Get top scores
	scores, err := store.TopScores(string(mode), 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snakearena play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %s\n", "Rank", "Player", "Level", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %s\n", "----", "------", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-5d  %-8d  %s\n", i+1, entry.Player, entry.Level, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(string(mode)); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}
