// Package arena drives headless simulations: it maps participants to
// controllers, feeds their decisions into the tick pipeline and collects
// per-agent and per-algorithm statistics across batches of seeded runs.
package arena

import (
	"fmt"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/engine"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

// DefaultAlgorithm is used for bots without an explicit algorithm.
const DefaultAlgorithm = registry.Heuristic

// controllerSeedStride spreads per-snake controller seeds away from the engine seed.
const controllerSeedStride = 7919

// Simulation owns one game: its state, its engine context and one controller
// per snake. It is not safe for concurrent use.
type Simulation struct {
	State *engine.GameState
	Ctx   *engine.Context

	controllers []registry.Controller
	algorithms  []string
}

// NewSimulation creates a simulation seeded with a deterministic LCG.
func NewSimulation(s config.Settings, gc config.GameConfig, seed int64) (*Simulation, error) {
	return NewSimulationWithRNG(s, gc, core.NewLCG(seed), seed)
}

// NewSimulationWithRNG creates a simulation around an explicit random source.
// controllerSeed derives the private RNG of each controller.
func NewSimulationWithRNG(s config.Settings, gc config.GameConfig, rng core.RandomPort, controllerSeed int64) (*Simulation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := gc.Validate(); err != nil {
		return nil, err
	}

	algorithms := ResolveAlgorithms(gc)
	gc.Algorithms = algorithms

	ctx := engine.NewContext(s, rng)
	sim := &Simulation{
		Ctx:        ctx,
		algorithms: algorithms,
	}

	for i, name := range algorithms {
		env := registry.Env{
			Settings: ctx.Settings,
			RNG:      core.NewLCG(controllerSeed + int64(i+1)*controllerSeedStride),
		}
		c, err := registry.Create(name, env)
		if err != nil {
			return nil, fmt.Errorf("arena: participant %d: %w", i+1, err)
		}
		sim.controllers = append(sim.controllers, c)
	}

	sim.State = engine.NewGame(gc, ctx)
	return sim, nil
}

// ResolveAlgorithms returns the algorithm of every participant: the explicit
// name when given, otherwise human for player slots and DefaultAlgorithm for bots.
func ResolveAlgorithms(gc config.GameConfig) []string {
	out := make([]string, gc.Agents())
	for i := range out {
		switch {
		case i < len(gc.Algorithms) && gc.Algorithms[i] != "":
			out[i] = gc.Algorithms[i]
		case gc.IsBot(i):
			out[i] = DefaultAlgorithm
		default:
			out[i] = registry.Human
		}
	}
	return out
}

// Algorithm returns the algorithm name of participant i.
func (sim *Simulation) Algorithm(i int) string {
	if i < 0 || i >= len(sim.algorithms) {
		return ""
	}
	return sim.algorithms[i]
}

// Human returns the human controller of participant i, or nil.
func (sim *Simulation) Human(i int) *registry.HumanController {
	if i < 0 || i >= len(sim.controllers) {
		return nil
	}
	h, _ := sim.controllers[i].(*registry.HumanController)
	return h
}

// Heuristic returns the heuristic controller of participant i, or nil.
func (sim *Simulation) Heuristic(i int) *registry.HeuristicController {
	if i < 0 || i >= len(sim.controllers) {
		return nil
	}
	h, _ := sim.controllers[i].(*registry.HeuristicController)
	return h
}

// Step asks every living snake's controller for a heading against the
// pre-tick state, applies all of them, then runs one tick.
func (sim *Simulation) Step() engine.TickResult {
	state := sim.State
	if state.Terminal() {
		return engine.TickResult{}
	}

	decisions := make([]core.Direction, len(state.Snakes))
	for i, sn := range state.Snakes {
		if sn.Alive {
			decisions[i] = sim.controllers[i].Decide(state, sn.ID)
		}
	}
	for i, sn := range state.Snakes {
		if sn.Alive {
			engine.ApplyDirection(sn, decisions[i])
		}
	}

	return engine.Tick(state, sim.Ctx)
}

// CanAdvance reports whether the level is over and another one may start
// within maxLevels.
func (sim *Simulation) CanAdvance(maxLevels int) bool {
	s := sim.State
	return s.LevelComplete && !s.GameOver && s.Level < maxLevels
}

// NextLevel starts the next level, carrying scores over.
func (sim *Simulation) NextLevel() {
	engine.NextLevel(sim.State, sim.Ctx)
}
