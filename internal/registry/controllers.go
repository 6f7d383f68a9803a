package registry

import (
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/engine"
	"github.com/vovakirdan/snake-arena/internal/heuristic"
)

// Built-in algorithm names.
const (
	Heuristic = "heuristic"
	Greedy    = "greedy"
	Random    = "random"
	Straight  = "straight"
	Human     = "human"
)

func init() {
	Register(Heuristic, "flood-fill look-ahead with food attraction and trap avoidance", func(env Env) Controller {
		return &HeuristicController{eval: heuristic.New(env.Settings)}
	})
	Register(Greedy, "shortest Manhattan step toward the nearest food, any legal move", func(env Env) Controller {
		return &GreedyController{}
	})
	Register(Random, "uniformly random legal move", func(env Env) Controller {
		return &RandomController{rng: env.RNG}
	})
	Register(Straight, "never turns", func(env Env) Controller {
		return &StraightController{}
	})
	Register(Human, "steered from keyboard input", func(env Env) Controller {
		return NewHumanController()
	})
}

// HeuristicController delegates to the flood-fill evaluator.
type HeuristicController struct {
	eval *heuristic.Evaluator
}

func (c *HeuristicController) Decide(state *engine.GameState, snakeID int) core.Direction {
	return c.eval.Choose(state, snakeID)
}

// Evaluate returns the full decision with every candidate score.
func (c *HeuristicController) Evaluate(state *engine.GameState, snakeID int) heuristic.Decision {
	return c.eval.Evaluate(state, snakeID)
}

// GreedyController heads for the nearest food without looking further ahead.
type GreedyController struct{}

func (c *GreedyController) Decide(state *engine.GameState, snakeID int) core.Direction {
	sn := state.Snake(snakeID)
	if sn == nil {
		return core.DirRight
	}
	legal := heuristic.LegalDirections(state, snakeID)
	if len(legal) == 0 {
		return sn.Direction
	}
	if len(state.Food) == 0 {
		for _, d := range legal {
			if d == sn.Direction {
				return d
			}
		}
		return legal[0]
	}

	best, bestDist := legal[0], -1
	for _, d := range legal {
		next := core.NextPosition(sn.Head(), d)
		dist := nearestFood(state, next)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

func nearestFood(state *engine.GameState, p core.Position) int {
	best := -1
	for _, f := range state.Food {
		if d := f.Pos.Manhattan(p); best < 0 || d < best {
			best = d
		}
	}
	return best
}

// RandomController picks any legal heading.
type RandomController struct {
	rng core.RandomPort
}

func (c *RandomController) Decide(state *engine.GameState, snakeID int) core.Direction {
	sn := state.Snake(snakeID)
	if sn == nil {
		return core.DirRight
	}
	legal := heuristic.LegalDirections(state, snakeID)
	if len(legal) == 0 || c.rng == nil {
		return sn.Direction
	}
	return legal[c.rng.NextInt(len(legal))]
}

// StraightController keeps the current heading. Useful as a baseline.
type StraightController struct{}

func (c *StraightController) Decide(state *engine.GameState, snakeID int) core.Direction {
	if sn := state.Snake(snakeID); sn != nil {
		return sn.Direction
	}
	return core.DirRight
}

// HumanController replays the last steering input.
// It is driven from a single UI goroutine.
type HumanController struct {
	pending core.Direction
	set     bool
}

// NewHumanController creates a controller with no pending input.
func NewHumanController() *HumanController {
	return &HumanController{}
}

// Steer records the heading to use on the next decision.
func (c *HumanController) Steer(d core.Direction) {
	c.pending = d
	c.set = true
}

func (c *HumanController) Decide(state *engine.GameState, snakeID int) core.Direction {
	if c.set {
		c.set = false
		return c.pending
	}
	if sn := state.Snake(snakeID); sn != nil {
		return sn.Direction
	}
	return core.DirRight
}
