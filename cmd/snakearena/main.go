// snakearena is a deterministic multi-snake arena for the terminal.
//
// Usage:
//
//	snakearena play               - Play against heuristic bots
//	snakearena watch              - Watch bots play each other
//	snakearena run                - Run one headless game and print stats
//	snakearena batch              - Run many seeded games and compare algorithms
//	snakearena scores [mode]      - Show high scores
//	snakearena results            - Browse stored scores and arena runs
//	snakearena algorithms         - List controller algorithms
//	snakearena config             - Print the effective settings
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.snakearena/arena.db)
//	--config <path>       - Load settings from a YAML file
//	--difficulty <name>   - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakearena",
	Short: "Snake Arena - Deterministic multi-snake simulation",
	Long: `Snake Arena runs tick-based snake games on a grid with walls, food that
breeds and snakes that starve. Humans and bot controllers share the same
rules, and every game is reproducible from its seed.

Available commands:
  play        - Play against heuristic bots
  watch       - Watch bots play each other
  run         - Run one headless game
  batch       - Run many seeded games and compare algorithms
  scores      - View high scores
  results     - Browse stored scores and arena runs
  algorithms  - List controller algorithms
  config      - Print the effective settings

Examples:
  snakearena play --bots 2
  snakearena watch --bots 4 --levels 3
  snakearena batch --runs 100 --bots 4 --algorithms heuristic,greedy
  snakearena run --seed 42 --trace`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snakearena/arena.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(algorithmsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings resolves settings and difficulty from the global flags.
func loadSettings() (config.Settings, config.Difficulty, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, 0, err
	}
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Settings{}, 0, err
	}
	return settings, difficulty, nil
}

// openStore opens the results database from the global flag.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening results database: %w", err)
	}
	return store, nil
}

// terminalSize returns the terminal size, or 80x24 when it is unknown.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
