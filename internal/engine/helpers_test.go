package engine

import (
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// constRNG always returns the same float; NextInt scales it into range.
type constRNG struct {
	f float64
}

func (r constRNG) Next() float64 { return r.f }

func (r constRNG) NextInt(max int) int {
	if max <= 0 {
		return 0
	}
	n := int(r.f * float64(max))
	if n >= max {
		n = max - 1
	}
	return n
}

// testSettings returns defaults with lifecycle noise switched off.
func testSettings() config.Settings {
	s := config.DefaultSettings()
	s.Levels = nil
	s.MinFoodOnBoard = 0
	s.AppleBaseProbability = 0
	s.RabbitBaseProbability = 0
	return s
}

func testContext(s config.Settings, rng core.RandomPort) *Context {
	if rng == nil {
		rng = core.NewLCG(1)
	}
	return NewContext(s, rng)
}

func newTestState(w, h int, mode config.GameMode, snakes ...*Snake) *GameState {
	state := &GameState{
		Width:      w,
		Height:     h,
		Snakes:     snakes,
		Walls:      make(map[core.Position]struct{}),
		Level:      1,
		Difficulty: config.Normal,
		Mode:       mode,
		WinnerID:   NoSnake,
	}
	RebuildBoard(state)
	return state
}

func newSnake(id int, dir core.Direction, segs ...core.Position) *Snake {
	return &Snake{
		ID:        id,
		Name:      "snake",
		Segments:  segs,
		Direction: dir,
		Alive:     true,
	}
}
