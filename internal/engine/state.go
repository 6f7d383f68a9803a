// Package engine implements the deterministic snake simulation: entities,
// level generation, lifecycle systems and the tick pipeline.
//
// Every system takes the game state and a *Context explicitly. The package
// holds no mutable globals, never reads the clock and never logs, so a run is
// fully determined by its settings, its game input and its RNG seed.
package engine

import (
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// NoSnake is the id used when no snake is referenced.
const NoSnake = 0

// Context carries the settings table and random source into every system.
type Context struct {
	Settings *config.Settings
	RNG      core.RandomPort
}

// NewContext creates a context holding a private copy of the settings.
func NewContext(s config.Settings, rng core.RandomPort) *Context {
	c := s.Clone()
	return &Context{Settings: &c, RNG: rng}
}

// GameState is the root aggregate mutated in place by the tick pipeline.
// It is owned by exactly one driver at a time.
type GameState struct {
	Board  *core.Board
	Width  int
	Height int

	Snakes []*Snake
	Food   []Food
	Walls  map[core.Position]struct{}
	// WallList keeps walls in generation order for deterministic iteration.
	WallList []core.Position

	Level         int
	Difficulty    config.Difficulty
	Mode          config.GameMode
	Tick          uint64
	TimeRemaining int

	GameOver      bool
	LevelComplete bool
	WinnerID      int
}

// Snake returns the snake with the given id, or nil.
func (s *GameState) Snake(id int) *Snake {
	for _, sn := range s.Snakes {
		if sn.ID == id {
			return sn
		}
	}
	return nil
}

// AliveCount returns the number of living snakes.
func (s *GameState) AliveCount() int {
	n := 0
	for _, sn := range s.Snakes {
		if sn.Alive {
			n++
		}
	}
	return n
}

// IsWall reports whether a wall occupies p.
func (s *GameState) IsWall(p core.Position) bool {
	_, ok := s.Walls[p]
	return ok
}

// FoodAt returns the index of the food at p, or -1.
func (s *GameState) FoodAt(p core.Position) int {
	for i := range s.Food {
		if s.Food[i].Pos == p {
			return i
		}
	}
	return -1
}

// Terminal reports whether the pipeline will refuse further ticks.
func (s *GameState) Terminal() bool {
	return s.GameOver || s.LevelComplete
}

// SetWalls replaces the wall set, keeping the given order.
func (s *GameState) SetWalls(walls []core.Position) {
	s.WallList = append([]core.Position(nil), walls...)
	s.Walls = make(map[core.Position]struct{}, len(walls))
	for _, w := range walls {
		s.Walls[w] = struct{}{}
	}
}

// removeFood deletes the food at index i, preserving order.
func (s *GameState) removeFood(i int) Food {
	f := s.Food[i]
	s.Food = append(s.Food[:i], s.Food[i+1:]...)
	return f
}
