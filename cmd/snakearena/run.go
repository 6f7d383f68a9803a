package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/arena"
	"github.com/vovakirdan/snake-arena/internal/engine"
)

// arenaFlags are the headless run options shared by run and batch.
type arenaFlags struct {
	bots       int
	algorithms []string
	maxTicks   int
	levels     int
	trace      bool
	save       bool
	verbose    bool
}

func (f *arenaFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.bots, "bots", 4, "Bots on the board")
	cmd.Flags().StringSliceVar(&f.algorithms, "algorithms", nil, "Bot algorithms, cycled over bots")
	cmd.Flags().IntVar(&f.maxTicks, "max-ticks", arena.DefaultMaxTicks, "Tick cap per run")
	cmd.Flags().IntVar(&f.levels, "levels", arena.DefaultLevels, "Levels per run")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "Record per-tick state fingerprints")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log every finished run")
}

// options builds arena options from the flags and the global settings.
func (f *arenaFlags) options(logger *log.Logger) (arena.Options, error) {
	if f.bots < 1 {
		return arena.Options{}, fmt.Errorf("need at least one bot")
	}
	settings, difficulty, err := loadSettings()
	if err != nil {
		return arena.Options{}, err
	}
	gc, err := gameConfig(0, f.bots, difficulty, f.algorithms)
	if err != nil {
		return arena.Options{}, err
	}
	return arena.Options{
		Settings: settings,
		Game:     gc,
		MaxTicks: f.maxTicks,
		Levels:   f.levels,
		Trace:    f.trace,
		Logger:   logger,
	}, nil
}

// newLogger creates the arena logger on stderr.
func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakearena",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// resolveSeed returns the global seed, or a time-based one when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

var runFlags arenaFlags

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one headless game and print stats",
	Long: `Play one game between bots without a display and print the final standings.
The same seed and settings always produce the same game.

Examples:
  snakearena run --seed 42
  snakearena run --bots 6 --algorithms heuristic,greedy --levels 3
  snakearena run --seed 42 --trace --save`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runFlags.register(runCmd)
	runCmd.Flags().BoolVar(&runFlags.save, "save", false, "Store the run in the results database")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger(runFlags.verbose)
	opts, err := runFlags.options(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := arena.RunOne(ctx, opts, resolveSeed())
	if err != nil {
		return err
	}

	if runFlags.save {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveRun(ctx, result); err != nil {
			return err
		}
		logger.Info("run saved", "id", result.ID)
	}

	printRun(result)
	return nil
}

// printRun writes the standings of a run to stdout.
func printRun(r arena.RunResult) {
	fmt.Printf("Run %s\n", r.ID)
	fmt.Printf("Seed: %d  Mode: %s  Ticks: %d  Level: %d  Time: %s\n",
		r.Seed, r.Mode, r.Ticks, r.Levels, r.Duration.Round(time.Millisecond))
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-10s  %-10s  %-6s  %-6s  %-6s  %s\n", "Rank", "Name", "Algorithm", "Score", "Won", "Ticks", "Status")
	fmt.Printf("  %-4s  %-10s  %-10s  %-6s  %-6s  %-6s  %s\n", "----", "----", "---------", "-----", "---", "-----", "------")

	agents := slices.Clone(r.Agents)
	slices.SortFunc(agents, func(a, b arena.AgentStats) int { return a.Rank - b.Rank })
	for _, a := range agents {
		status := "alive"
		if !a.Alive {
			status = a.DeathReason
		}
		fmt.Printf("  %-4d  %-10s  %-10s  %-6d  %-6d  %-6d  %s\n",
			a.Rank, a.Name, a.Algorithm, a.Score, a.LevelsWon, a.TicksSurvived, status)
	}

	fmt.Println()
	if w, ok := r.Winner(); ok {
		fmt.Printf("Winner: %s (%s)\n", w.Name, w.Algorithm)
	} else {
		fmt.Println("Winner: none")
	}
	if len(r.Fingerprints) > 0 {
		fmt.Printf("Final fingerprint: %016x (%d ticks traced)\n",
			r.Fingerprints[len(r.Fingerprints)-1], len(r.Fingerprints))
	}
}

// formatDeaths renders a death reason histogram in a stable order.
func formatDeaths(deaths map[string]int) string {
	reasons := []string{engine.ReasonWall, engine.ReasonSnake, engine.ReasonSelf, engine.ReasonStarved}
	parts := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		if n := deaths[reason]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", reason, n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
