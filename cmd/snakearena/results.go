package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/platform/tui"
)

var (
	flagRunID    string
	flagDeleteID string
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse stored scores and arena runs",
	Long: `Open an interactive viewer for high scores, per-algorithm summaries and
recent arena runs. With --run, print the standings of one stored run instead.
With --delete, remove a stored run and its per-agent results.

Examples:
  snakearena results
  snakearena results --run 3f2a9c1e-...
  snakearena results --delete 3f2a9c1e-...`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&flagRunID, "run", "", "Print one stored run by id")
	resultsCmd.Flags().StringVar(&flagDeleteID, "delete", "", "Delete one stored run by id")
}

func runResults(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagDeleteID != "" {
		deleted, err := store.DeleteRun(flagDeleteID)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("run %q not found", flagDeleteID)
		}
		fmt.Printf("Deleted run %s.\n", flagDeleteID)
		return nil
	}

	if flagRunID == "" {
		width, height := terminalSize()
		return tui.RunResults(store, width, height)
	}

	run, err := store.RunByID(flagRunID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run %q not found", flagRunID)
	}
	agents, err := store.RunAgents(run.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s\n", run.ID)
	fmt.Printf("Seed: %d  Mode: %s  Ticks: %d  Level: %d  Saved: %s\n",
		run.Seed, run.Mode, run.Ticks, run.Levels, run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-10s  %-10s  %-6s  %-6s  %s\n", "Rank", "Name", "Algorithm", "Score", "Ticks", "Status")
	fmt.Printf("  %-4s  %-10s  %-10s  %-6s  %-6s  %s\n", "----", "----", "---------", "-----", "-----", "------")

	for _, a := range agents {
		status := "alive"
		if !a.Alive {
			status = a.DeathReason
		}
		fmt.Printf("  %-4d  %-10s  %-10s  %-6d  %-6d  %s\n", a.Rank, a.Name, a.Algorithm, a.Score, a.TicksSurvived, status)
	}
	return nil
}
