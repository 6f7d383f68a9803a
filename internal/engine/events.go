package engine

import "github.com/vovakirdan/snake-arena/internal/core"

// Event is an immutable fact emitted by the tick pipeline.
// The set of implementations is closed.
type Event interface {
	isEvent()
}

// SnakeDied is emitted when a snake dies.
type SnakeDied struct {
	SnakeID int
	Reason  string
}

func (SnakeDied) isEvent() {}

// FoodEaten is emitted when a snake eats food.
type FoodEaten struct {
	SnakeID  int
	Pos      core.Position
	Kind     FoodKind
	Points   int
	NewScore int
}

func (FoodEaten) isEvent() {}

// FoodBorn is emitted when a food entity reproduces.
type FoodBorn struct {
	Parent core.Position
	Child  core.Position
	Kind   FoodKind
}

func (FoodBorn) isEvent() {}

// FoodSpawned is emitted when food is replenished to keep the board stocked.
type FoodSpawned struct {
	Pos  core.Position
	Kind FoodKind
}

func (FoodSpawned) isEvent() {}

// LevelCompleted is emitted once when the level ends.
type LevelCompleted struct {
	Reason    string
	WinnerID  int // NoSnake when HasWinner is false
	HasWinner bool
}

func (LevelCompleted) isEvent() {}

// GameOver is emitted when the game cannot continue.
// It is paired with a LevelCompleted event from the same tick.
type GameOver struct{}

func (GameOver) isEvent() {}

// Level completion reasons.
const (
	CompleteTarget   = "target reached"
	CompleteDied     = "agent died"
	CompleteLastOne  = "last snake standing"
	CompleteNoneLeft = "no survivors"
	CompleteTimeUp   = "time up"
)

// TickResult carries the events of one tick in emission order.
type TickResult struct {
	Events []Event
}

func (r *TickResult) emit(e Event) {
	r.Events = append(r.Events, e)
}

// Deaths returns the SnakeDied events of the tick.
func (r TickResult) Deaths() []SnakeDied {
	var out []SnakeDied
	for _, e := range r.Events {
		if d, ok := e.(SnakeDied); ok {
			out = append(out, d)
		}
	}
	return out
}

// Ate reports whether the snake ate during the tick.
func (r TickResult) Ate(snakeID int) bool {
	for _, e := range r.Events {
		if fe, ok := e.(FoodEaten); ok && fe.SnakeID == snakeID {
			return true
		}
	}
	return false
}

// Completed returns the LevelCompleted event, if one was emitted.
func (r TickResult) Completed() (LevelCompleted, bool) {
	for _, e := range r.Events {
		if c, ok := e.(LevelCompleted); ok {
			return c, true
		}
	}
	return LevelCompleted{}, false
}
