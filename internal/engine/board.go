package engine

import "github.com/vovakirdan/snake-arena/internal/core"

// BuildBoard recomputes the board projection from the entity collections.
// Paint order: walls, food, dead snakes, living snakes. Later layers win.
func BuildBoard(state *GameState) *core.Board {
	b := core.NewBoard(state.Width, state.Height)

	for _, w := range state.WallList {
		b.Set(w, core.CellWall)
	}
	for _, f := range state.Food {
		b.Set(f.Pos, f.Kind.Cell())
	}
	for _, sn := range state.Snakes {
		if sn.Alive {
			continue
		}
		for _, seg := range sn.Segments {
			b.SetOwned(seg, core.CellDeadSnake, sn.ID)
		}
	}
	for _, sn := range state.Snakes {
		if !sn.Alive {
			continue
		}
		// Paint tail to head so the head marker survives overlaps
		for i := len(sn.Segments) - 1; i >= 0; i-- {
			cell := core.CellSnakeBody
			if i == 0 {
				cell = core.CellSnakeHead
			}
			b.SetOwned(sn.Segments[i], cell, sn.ID)
		}
	}

	return b
}

// RebuildBoard refreshes state.Board in place.
func RebuildBoard(state *GameState) {
	state.Board = BuildBoard(state)
}
