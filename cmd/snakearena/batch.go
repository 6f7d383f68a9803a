package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/arena"
)

var (
	batchFlags  arenaFlags
	flagRuns    int
	flagWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run many seeded games and compare algorithms",
	Long: `Run a batch of independent headless games. Run i uses seed + i, so a batch
is reproducible regardless of the worker count. Results are stored in the
results database unless --save=false is given.

Examples:
  snakearena batch --runs 100
  snakearena batch --runs 500 --bots 4 --algorithms heuristic,greedy,random,straight
  snakearena batch --seed 1000 --runs 50 --workers 8 --levels 3`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchFlags.register(batchCmd)
	batchCmd.Flags().BoolVar(&batchFlags.save, "save", true, "Store runs in the results database")
	batchCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs")
	batchCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Parallel runs")
}

func runBatch(cmd *cobra.Command, args []string) error {
	logger := newLogger(batchFlags.verbose)
	opts, err := batchFlags.options(logger)
	if err != nil {
		return err
	}
	opts.Runs = flagRuns
	opts.Workers = flagWorkers
	opts.BaseSeed = resolveSeed()

	if batchFlags.save {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Saver = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	batch, err := arena.RunBatch(ctx, opts)
	if err != nil {
		return err
	}

	printBatch(batch, opts.BaseSeed)
	return nil
}

// printBatch writes the per-algorithm summary of a batch to stdout.
func printBatch(b arena.BatchResult, baseSeed int64) {
	fmt.Printf("Batch %s\n", b.ID)
	fmt.Printf("Runs: %d  Seeds: %d..%d  Time: %s\n",
		len(b.Runs), baseSeed, baseSeed+int64(len(b.Runs))-1, b.Duration.Round(time.Millisecond))
	fmt.Println()

	// Print header
	fmt.Printf("  %-10s  %-6s  %-9s  %-9s  %-8s  %-5s  %s\n", "Algorithm", "Agents", "Avg score", "Avg ticks", "Avg rank", "Wins", "Deaths")
	fmt.Printf("  %-10s  %-6s  %-9s  %-9s  %-8s  %-5s  %s\n", "---------", "------", "---------", "---------", "--------", "----", "------")

	for _, a := range b.Algorithms {
		fmt.Printf("  %-10s  %-6d  %-9.2f  %-9.1f  %-8.2f  %-5d  %s\n",
			a.Algorithm, a.Agents, a.AvgScore, a.AvgTicks, a.AvgRank, a.Wins, formatDeaths(a.Deaths))
	}
}
