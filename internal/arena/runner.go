package arena

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/engine"
)

// Default run limits.
const (
	DefaultMaxTicks = 5000
	DefaultLevels   = 1
)

// ResultSaver persists finished runs. Implemented by storage.Store.
type ResultSaver interface {
	SaveRun(ctx context.Context, r RunResult) error
}

// Options configures single runs and batches.
type Options struct {
	Settings config.Settings
	Game     config.GameConfig

	MaxTicks int   // tick cap per run across all levels
	Levels   int   // levels to play before stopping
	Runs     int   // batch size
	BaseSeed int64 // run i uses BaseSeed + i
	Workers  int   // parallel runs, at least 1

	Trace  bool        // record per-tick fingerprints
	Saver  ResultSaver // nil disables persistence
	Logger *log.Logger // nil discards logs
}

// withDefaults fills unset limits.
func (o Options) withDefaults() Options {
	if o.MaxTicks <= 0 {
		o.MaxTicks = DefaultMaxTicks
	}
	if o.Levels <= 0 {
		o.Levels = DefaultLevels
	}
	if o.Runs <= 0 {
		o.Runs = 1
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// RunOne plays one isolated game with the given seed until the tick cap,
// game over, or the last allowed level ends.
func RunOne(ctx context.Context, opts Options, seed int64) (RunResult, error) {
	opts = opts.withDefaults()
	start := time.Now()

	sim, err := NewSimulation(opts.Settings, opts.Game, seed)
	if err != nil {
		return RunResult{}, err
	}
	state := sim.State

	agents := make([]AgentStats, len(state.Snakes))
	for i, sn := range state.Snakes {
		agents[i] = AgentStats{SnakeID: sn.ID, Name: sn.Name, Algorithm: sim.Algorithm(i)}
	}

	result := RunResult{
		ID:   uuid.NewString(),
		Seed: seed,
		Mode: string(state.Mode),
	}

	for result.Ticks < opts.MaxTicks {
		if err := ctx.Err(); err != nil {
			return RunResult{}, fmt.Errorf("arena: run %d: %w", seed, err)
		}

		for i, sn := range state.Snakes {
			if sn.Alive {
				agents[i].TicksSurvived++
			}
		}

		res := sim.Step()
		result.Ticks++
		for _, d := range res.Deaths() {
			a := &agents[d.SnakeID-1]
			a.Deaths++
			a.DeathReason = d.Reason
			if a.DeathCauses == nil {
				a.DeathCauses = make(map[string]int)
			}
			a.DeathCauses[d.Reason]++
		}
		if opts.Trace {
			result.Fingerprints = append(result.Fingerprints, state.Fingerprint())
		}

		if done, ok := res.Completed(); ok {
			opts.Logger.Debug("level completed",
				"seed", seed,
				"level", state.Level,
				"reason", done.Reason,
				"winner", done.WinnerID,
			)
		}
		if !state.Terminal() {
			continue
		}
		if !sim.CanAdvance(opts.Levels) {
			break
		}
		sim.NextLevel()
		for i := range agents {
			agents[i].DeathReason = ""
		}
	}

	result.Levels = state.Level
	standings := engine.Standings(state)
	for rank, sn := range standings {
		a := &agents[sn.ID-1]
		a.Score = sn.Score
		a.LevelsWon = sn.LevelsWon
		a.Alive = sn.Alive
		a.Rank = rank + 1
	}
	result.WinnerID = runWinner(standings)
	result.Agents = agents
	result.Duration = time.Since(start)
	result.FinishedAt = time.Now()

	opts.Logger.Debug("run finished",
		"seed", seed,
		"ticks", result.Ticks,
		"level", result.Levels,
		"winner", result.WinnerID,
	)
	return result, nil
}

// runWinner returns the leader when it is strictly ahead of the runner-up.
// A lone snake wins only if it completed a level.
func runWinner(standings []*engine.Snake) int {
	if len(standings) == 0 {
		return engine.NoSnake
	}
	first := standings[0]
	if len(standings) == 1 {
		if first.LevelsWon > 0 {
			return first.ID
		}
		return engine.NoSnake
	}
	second := standings[1]
	if first.LevelsWon == second.LevelsWon && first.Score == second.Score && first.Alive == second.Alive {
		return engine.NoSnake
	}
	return first.ID
}

// RunBatch plays opts.Runs independent runs on up to opts.Workers goroutines.
// Results are returned in seed order and, when a saver is set, persisted in
// that order after all runs finish.
func RunBatch(ctx context.Context, opts Options) (BatchResult, error) {
	opts = opts.withDefaults()
	start := time.Now()
	batch := BatchResult{ID: uuid.NewString()}

	opts.Logger.Info("batch started",
		"batch", batch.ID,
		"runs", opts.Runs,
		"workers", opts.Workers,
		"base_seed", opts.BaseSeed,
	)

	results := make([]RunResult, opts.Runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := range opts.Runs {
		seed := opts.BaseSeed + int64(i)
		g.Go(func() error {
			r, err := RunOne(gctx, opts, seed)
			if err != nil {
				return err
			}
			r.BatchID = batch.ID
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResult{}, err
	}

	if opts.Saver != nil {
		for _, r := range results {
			if err := opts.Saver.SaveRun(ctx, r); err != nil {
				return BatchResult{}, fmt.Errorf("arena: cannot save run %d: %w", r.Seed, err)
			}
		}
	}

	batch.Runs = results
	batch.Algorithms = Aggregate(results)
	batch.Duration = time.Since(start)

	opts.Logger.Info("batch finished",
		"batch", batch.ID,
		"runs", len(results),
		"duration", batch.Duration.Round(time.Millisecond),
	)
	return batch, nil
}
