package engine

// ApplyHunger runs the hunger system for every living snake that did not eat
// this tick; a snake that ate keeps the counter reset to 0.
// A snake whose counter has reached Settings.HungerThreshold loses its tail
// segment and the counter resets; otherwise the counter grows by one. A snake
// trimmed below Settings.MinSnakeLength starves.
func ApplyHunger(state *GameState, ctx *Context, res *TickResult) {
	s := ctx.Settings
	for _, sn := range state.Snakes {
		if !sn.Alive || res.Ate(sn.ID) {
			continue
		}
		if sn.TicksWithoutFood < s.HungerThreshold {
			sn.TicksWithoutFood++
			continue
		}

		if len(sn.Segments) > 0 {
			sn.Segments = sn.Segments[:len(sn.Segments)-1]
		}
		sn.TicksWithoutFood = 0

		if sn.Len() < s.MinSnakeLength {
			kill(sn, ReasonStarved, state.Tick)
			res.emit(SnakeDied{SnakeID: sn.ID, Reason: ReasonStarved})
		}
	}
}
