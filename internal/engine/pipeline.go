package engine

import "github.com/vovakirdan/snake-arena/internal/core"

// Tick advances the simulation by one step. The stages always run in this
// order and a later stage never undoes an earlier one:
//
//  1. movement, collisions and eating
//  2. hunger
//  3. food aging, reproduction and replenishment
//  4. board rebuild
//  5. level completion
//
// A terminal state (game over or level complete) makes Tick a no-op.
func Tick(state *GameState, ctx *Context) TickResult {
	var res TickResult
	if state.Terminal() {
		return res
	}

	state.Tick++

	MoveAndEat(state, ctx, &res)
	ApplyHunger(state, ctx, &res)
	ApplyReproduction(state, ctx, &res)
	RebuildBoard(state)
	CheckLevelCompletion(state, ctx, &res)

	return res
}

// MoveAndEat moves every living snake in turn, resolving wall, snake and
// self collisions and eating the food under the new head.
func MoveAndEat(state *GameState, ctx *Context, res *TickResult) {
	for _, sn := range state.Snakes {
		if !sn.Alive || sn.Len() == 0 {
			continue
		}

		next := core.NextPosition(sn.Head(), sn.Direction)

		if CollidesWithWall(next, state) {
			die(state, sn, ReasonWall, res)
			continue
		}
		if CollidesWithSnake(next, state.Snakes, sn.ID, false) {
			die(state, sn, ReasonSnake, res)
			continue
		}

		foodIdx := state.FoodAt(next)
		MoveSnake(sn, foodIdx >= 0)

		if SelfCollision(sn) {
			die(state, sn, ReasonSelf, res)
			continue
		}

		if foodIdx >= 0 {
			f := state.removeFood(foodIdx)
			pts := Points(f.Kind, ctx.Settings)
			sn.Score += pts
			sn.TicksWithoutFood = 0
			res.emit(FoodEaten{
				SnakeID:  sn.ID,
				Pos:      f.Pos,
				Kind:     f.Kind,
				Points:   pts,
				NewScore: sn.Score,
			})
		}
	}
}

func die(state *GameState, sn *Snake, reason string, res *TickResult) {
	kill(sn, reason, state.Tick)
	res.emit(SnakeDied{SnakeID: sn.ID, Reason: reason})
}
