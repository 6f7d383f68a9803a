package engine

import "github.com/vovakirdan/snake-arena/internal/core"

// spawnAttemptsPerEntity bounds random placement tries per requested entity.
const spawnAttemptsPerEntity = 100

// SpawnFood places up to count entities of the given kind at random cells that
// are not walls, not on a living snake, and not within Chebyshev distance 1 of
// any food (including food placed by this call). extraBlocked cells are
// avoided as well. The new food is appended to state.Food and returned; fewer
// than count entities are placed when the attempt budget runs out.
func SpawnFood(ctx *Context, state *GameState, kind FoodKind, count int, extraBlocked []core.Position) []Food {
	if count <= 0 || state.Width <= 0 || state.Height <= 0 {
		return nil
	}

	blocked := make(map[core.Position]struct{}, len(extraBlocked))
	for _, p := range extraBlocked {
		blocked[p] = struct{}{}
	}

	var spawned []Food
	for attempt := 0; attempt < count*spawnAttemptsPerEntity && len(spawned) < count; attempt++ {
		p := core.Pos(ctx.RNG.NextInt(state.Width), ctx.RNG.NextInt(state.Height))
		if !canPlaceFood(state, p, blocked) {
			continue
		}
		f := NewFood(kind, p)
		state.Food = append(state.Food, f)
		spawned = append(spawned, f)
	}
	return spawned
}

// canPlaceFood applies the spawn spacing rules to a single cell.
func canPlaceFood(state *GameState, p core.Position, blocked map[core.Position]struct{}) bool {
	if CollidesWithWall(p, state) {
		return false
	}
	if _, ok := blocked[p]; ok {
		return false
	}
	if occupiedBySnake(p, state.Snakes) {
		return false
	}
	for _, f := range state.Food {
		if f.Pos.Chebyshev(p) <= 1 {
			return false
		}
	}
	return true
}
