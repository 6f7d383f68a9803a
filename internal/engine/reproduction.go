package engine

import (
	"github.com/vovakirdan/snake-arena/internal/core"
)

// siblingOffsets lists every offset at Chebyshev distance 1 or 2.
var siblingOffsets = func() []core.Position {
	var out []core.Position
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, core.Pos(dx, dy))
		}
	}
	return out
}()

// ApplyReproduction ages every food entity, lets adults reproduce, purges
// entities past their maximum age and tops the board back up to
// Settings.MinFoodOnBoard.
func ApplyReproduction(state *GameState, ctx *Context, res *TickResult) {
	s := ctx.Settings

	// Newborns appended below are not processed this tick
	parents := len(state.Food)
	for i := 0; i < parents; i++ {
		f := &state.Food[i]
		f.Age++
		f.Cooldown++

		if !canReproduce(state, ctx, i) {
			continue
		}

		neighbors := countNeighbors(state, i, s.NeighborRadius)
		p := ReproductionProbability(BaseProbability(f.Kind, s), f.Cooldown, s.NeighborPenalty, neighbors)
		if p <= 0 || ctx.RNG.Next() >= p {
			continue
		}

		child, ok := findSiblingCell(state, ctx, f.Pos)
		if !ok {
			continue
		}
		// Appending may move the backing array, so re-take the parent afterwards
		kind, parentPos := f.Kind, f.Pos
		state.Food = append(state.Food, NewFood(kind, child))
		parent := &state.Food[i]
		parent.Cooldown = 0
		parent.Reproductions++
		res.emit(FoodBorn{Parent: parentPos, Child: child, Kind: kind})
	}

	purgeOldFood(state, ctx)
	replenishFood(state, ctx, res)
}

// ReproductionProbability is base * cooldown * (1 - penalty * neighbors),
// clamped to [0, 1].
func ReproductionProbability(base float64, cooldown int, penalty float64, neighbors int) float64 {
	p := base * float64(cooldown) * (1 - penalty*float64(neighbors))
	return core.ClampF(p, 0, 1)
}

// canReproduce checks the age band, cooldown, reproduction cap and density gates.
func canReproduce(state *GameState, ctx *Context, i int) bool {
	s := ctx.Settings
	f := state.Food[i]
	if !IsAdult(f, s) {
		return false
	}
	if f.Cooldown < MinCooldown(f.Kind, s) {
		return false
	}
	if f.Reproductions >= MaxReproductions(f.Kind, s) {
		return false
	}
	return countNeighbors(state, i, s.NeighborRadius) < s.NeighborCap
}

// countNeighbors counts other food within radius (Chebyshev) of food i.
func countNeighbors(state *GameState, i, radius int) int {
	origin := state.Food[i].Pos
	n := 0
	for j := range state.Food {
		if j != i && state.Food[j].Pos.Chebyshev(origin) <= radius {
			n++
		}
	}
	return n
}

// findSiblingCell tries the sibling offsets in shuffled order and returns the
// first free cell. There is no guarantee a cell is found.
func findSiblingCell(state *GameState, ctx *Context, origin core.Position) (core.Position, bool) {
	offsets := append([]core.Position(nil), siblingOffsets...)
	core.Shuffle(ctx.RNG, len(offsets), func(i, j int) {
		offsets[i], offsets[j] = offsets[j], offsets[i]
	})
	for _, o := range offsets {
		p := origin.Add(o.X, o.Y)
		if CollidesWithWall(p, state) || occupiedBySnake(p, state.Snakes) || state.FoodAt(p) >= 0 {
			continue
		}
		return p, true
	}
	return core.Position{}, false
}

// purgeOldFood removes entities older than their kind's maximum age.
func purgeOldFood(state *GameState, ctx *Context) {
	kept := state.Food[:0]
	for _, f := range state.Food {
		if f.Age <= MaxAge(f.Kind, ctx.Settings) {
			kept = append(kept, f)
		}
	}
	state.Food = kept
}

// replenishFood spawns apples while the board holds fewer than the minimum.
func replenishFood(state *GameState, ctx *Context, res *TickResult) {
	deficit := ctx.Settings.MinFoodOnBoard - len(state.Food)
	if deficit <= 0 {
		return
	}
	for _, f := range SpawnFood(ctx, state, FoodApple, deficit, nil) {
		res.emit(FoodSpawned{Pos: f.Pos, Kind: f.Kind})
	}
}
