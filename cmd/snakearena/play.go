package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/platform/tui"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

var (
	flagPlayers    int
	flagBots       int
	flagWatchBots  int
	flagLevels     int
	flagTickRate   int
	flagAlgorithms []string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against heuristic bots",
	Long: `Start an interactive game.

Controls:
  Arrows     - Steer player 1
  WASD       - Steer player 2 (or player 1 when playing alone)
  P/Space    - Pause
  N/Enter    - Next level
  R          - Restart (after game over)
  Ctrl+S     - Save a board screenshot
  Q/Ctrl+C   - Quit

A lone snake plays single mode: reach the level target before starving.
With bots the level lasts until one snake is left or the timer runs out.

Examples:
  snakearena play
  snakearena play --bots 3 --difficulty hard
  snakearena play --players 2 --bots 2
  snakearena play --seed 42 --levels 5`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch bots play each other",
	Long: `Run a bot-only game in the terminal. Levels advance automatically.

Examples:
  snakearena watch
  snakearena watch --bots 6 --algorithms heuristic,greedy,random
  snakearena watch --seed 7 --fps 20`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayers, "players", 1, "Human players (1 or 2)")
	playCmd.Flags().IntVar(&flagBots, "bots", 0, "Bot opponents")
	playCmd.Flags().IntVar(&flagLevels, "levels", 0, "Levels to play (0 = until game over)")
	playCmd.Flags().IntVar(&flagTickRate, "fps", 0, "Tick rate (0 = settings value)")
	playCmd.Flags().StringSliceVar(&flagAlgorithms, "algorithms", nil, "Bot algorithms, cycled over bots")

	watchCmd.Flags().IntVar(&flagWatchBots, "bots", 4, "Bots on the board")
	watchCmd.Flags().IntVar(&flagLevels, "levels", 0, "Levels to play (0 = until game over)")
	watchCmd.Flags().IntVar(&flagTickRate, "fps", 0, "Tick rate (0 = settings value)")
	watchCmd.Flags().StringSliceVar(&flagAlgorithms, "algorithms", nil, "Bot algorithms, cycled over bots")
}

// gameConfig builds the per-game input. Algorithms cycle over the bot slots.
func gameConfig(players, bots int, difficulty config.Difficulty, algorithms []string) (config.GameConfig, error) {
	for _, name := range algorithms {
		if !registry.Exists(name) {
			return config.GameConfig{}, fmt.Errorf("unknown algorithm %q, run 'snakearena algorithms' to list them", name)
		}
	}

	gc := config.GameConfig{
		Players:    players,
		Bots:       bots,
		Difficulty: difficulty,
	}
	if len(algorithms) > 0 {
		gc.Algorithms = make([]string, players+bots)
		for i := range bots {
			gc.Algorithms[players+i] = algorithms[i%len(algorithms)]
		}
	}
	return gc, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagPlayers < 1 || flagPlayers > 2 {
		return fmt.Errorf("players must be 1 or 2, got %d", flagPlayers)
	}
	return runInteractive(flagPlayers, flagBots, false)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if flagWatchBots < 1 {
		return fmt.Errorf("watch needs at least one bot")
	}
	return runInteractive(0, flagWatchBots, true)
}

func runInteractive(players, bots int, autoNext bool) error {
	settings, difficulty, err := loadSettings()
	if err != nil {
		return err
	}

	gc, err := gameConfig(players, bots, difficulty, flagAlgorithms)
	if err != nil {
		return err
	}

	// Open score storage (optional - game works without it)
	store, err := openStore()
	if err == nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Settings: settings,
		Game:     gc,
		Seed:     flagSeed,
		Levels:   flagLevels,
		TickRate: flagTickRate,
		AutoNext: autoNext,
	}, store)
}
