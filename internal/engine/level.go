package engine

import (
	"sort"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// NewGame creates the game state for level 1 from the game input.
// The input is assumed to have passed GameConfig.Validate.
func NewGame(gc config.GameConfig, ctx *Context) *GameState {
	state := &GameState{
		Width:      ctx.Settings.BoardWidth,
		Height:     ctx.Settings.BoardHeight,
		Difficulty: gc.Difficulty,
		Mode:       gc.ResolvedMode(),
	}
	if state.Difficulty == 0 {
		state.Difficulty = config.Normal
	}

	for i := range gc.Agents() {
		sn := &Snake{
			ID:    i + 1,
			Name:  gc.Name(i),
			IsBot: gc.IsBot(i),
		}
		if i < len(gc.Algorithms) {
			sn.Algorithm = gc.Algorithms[i]
		}
		state.Snakes = append(state.Snakes, sn)
	}

	StartLevel(state, 1, ctx)
	return state
}

// NextLevel starts the level after the current one, carrying scores over.
func NextLevel(state *GameState, ctx *Context) {
	StartLevel(state, state.Level+1, ctx)
}

// StartLevel resets the state for the given level. Score and levels won carry
// over on every snake; everything else is rebuilt: snakes respawn at their
// start slots, walls and food are regenerated and all flags clear.
func StartLevel(state *GameState, level int, ctx *Context) {
	s := ctx.Settings

	state.Level = level
	state.Width = s.BoardWidth
	state.Height = s.BoardHeight
	state.Tick = 0
	state.GameOver = false
	state.LevelComplete = false
	state.WinnerID = NoSnake
	state.Food = nil
	state.TimeRemaining = 0
	if state.Mode == config.ModeMulti {
		state.TimeRemaining = s.MultiTimerTicks
	}

	var occupied []core.Position
	for i, sn := range state.Snakes {
		head, dir := StartSlot(i, state.Width, state.Height, s.InitialSnakeLength)
		sn.Segments = bodyBehind(head, dir, s.InitialSnakeLength)
		sn.Direction = dir
		sn.Alive = true
		sn.TicksWithoutFood = 0
		sn.DeathReason = ""
		sn.DiedAtTick = 0
		occupied = append(occupied, sn.Segments...)
	}

	walls := GenerateWalls(ctx, state.Width, state.Height,
		s.WallCount(level, state.Difficulty), s.WallLength(level), occupied)
	state.SetWalls(walls)

	total := s.FoodCount(level)
	rabbits := s.RabbitCount(total)
	SpawnFood(ctx, state, FoodRabbit, rabbits, nil)
	SpawnFood(ctx, state, FoodApple, total-rabbits, nil)

	RebuildBoard(state)
}

// StartSlot returns the head position and heading for participant slot i.
// Slots alternate sides so opponents start facing each other.
func StartSlot(i, w, h, length int) (core.Position, core.Direction) {
	type slot struct {
		fx, fy float64
		dir    core.Direction
	}
	slots := []slot{
		{0.25, 0.5, core.DirRight},
		{0.75, 0.5, core.DirLeft},
		{0.5, 0.25, core.DirDown},
		{0.5, 0.75, core.DirUp},
		{0.25, 0.25, core.DirRight},
		{0.75, 0.75, core.DirLeft},
		{0.25, 0.75, core.DirRight},
		{0.75, 0.25, core.DirLeft},
	}
	sl := slots[i%len(slots)]
	head := core.Pos(int(sl.fx*float64(w)), int(sl.fy*float64(h)))

	// Keep the whole body on the board
	switch sl.dir {
	case core.DirRight:
		head.X = max(head.X, length-1)
	case core.DirLeft:
		head.X = min(head.X, w-length)
	case core.DirDown:
		head.Y = max(head.Y, length-1)
	case core.DirUp:
		head.Y = min(head.Y, h-length)
	}
	return head, sl.dir
}

// bodyBehind lays out length segments trailing away from dir.
func bodyBehind(head core.Position, dir core.Direction, length int) []core.Position {
	dx, dy := dir.Delta()
	segs := make([]core.Position, 0, length)
	for i := range length {
		segs = append(segs, head.Add(-dx*i, -dy*i))
	}
	return segs
}

// CheckLevelCompletion applies the mode's win/loss rules and emits the
// completion events. In multi mode the countdown timer is decremented first.
func CheckLevelCompletion(state *GameState, ctx *Context, res *TickResult) {
	if state.Terminal() {
		return
	}

	switch state.Mode {
	case config.ModeSingle:
		if len(state.Snakes) == 0 {
			return
		}
		sn := state.Snakes[0]
		switch {
		case !sn.Alive:
			completeLevel(state, CompleteDied, res)
			state.GameOver = true
			res.emit(GameOver{})
		case sn.Score >= ctx.Settings.CumulativeTarget(state.Level):
			completeLevel(state, CompleteTarget, res)
		}

	case config.ModeMulti:
		if state.TimeRemaining > 0 {
			state.TimeRemaining--
		}
		alive := state.AliveCount()
		switch {
		case alive == 1:
			completeLevel(state, CompleteLastOne, res)
		case alive == 0:
			completeLevel(state, CompleteNoneLeft, res)
		case state.TimeRemaining <= 0:
			completeLevel(state, CompleteTimeUp, res)
		}
	}
}

// completeLevel marks the level complete and awards the win to the sole survivor.
func completeLevel(state *GameState, reason string, res *TickResult) {
	state.LevelComplete = true
	ev := LevelCompleted{Reason: reason, WinnerID: NoSnake}

	if state.AliveCount() == 1 {
		for _, sn := range state.Snakes {
			if sn.Alive {
				sn.LevelsWon++
				state.WinnerID = sn.ID
				ev.WinnerID = sn.ID
				ev.HasWinner = true
				break
			}
		}
	}
	res.emit(ev)
}

// Standings returns the snakes ranked by levels won, then score, then
// survival (alive first, later deaths first), then id.
func Standings(state *GameState) []*Snake {
	out := append([]*Snake(nil), state.Snakes...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.LevelsWon != b.LevelsWon {
			return a.LevelsWon > b.LevelsWon
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Alive != b.Alive {
			return a.Alive
		}
		if a.DiedAtTick != b.DiedAtTick {
			return a.DiedAtTick > b.DiedAtTick
		}
		return a.ID < b.ID
	})
	return out
}
