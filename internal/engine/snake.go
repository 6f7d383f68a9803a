package engine

import "github.com/vovakirdan/snake-arena/internal/core"

// Death reasons reported on Snake.DeathReason and SnakeDied events.
const (
	ReasonWall    = "hit a wall"
	ReasonSnake   = "collided with another snake"
	ReasonSelf    = "ate itself"
	ReasonStarved = "starved"
)

// Snake is one agent on the board. Segments[0] is the head.
type Snake struct {
	ID               int
	Name             string
	Segments         []core.Position
	Direction        core.Direction
	Alive            bool
	Score            int
	LevelsWon        int
	TicksWithoutFood int
	IsBot            bool
	Algorithm        string // controller name, empty outside the arena
	DeathReason      string
	DiedAtTick       uint64
}

// Head returns the head position. A snake starved down to nothing reports (0, 0).
func (sn *Snake) Head() core.Position {
	if len(sn.Segments) == 0 {
		return core.Position{}
	}
	return sn.Segments[0]
}

// Tail returns the last segment.
func (sn *Snake) Tail() core.Position {
	if len(sn.Segments) == 0 {
		return core.Position{}
	}
	return sn.Segments[len(sn.Segments)-1]
}

// Len returns the number of segments.
func (sn *Snake) Len() int {
	return len(sn.Segments)
}

// Occupies reports whether any segment lies on p.
func (sn *Snake) Occupies(p core.Position) bool {
	for _, seg := range sn.Segments {
		if seg == p {
			return true
		}
	}
	return false
}

// ApplyDirection changes the heading unless d reverses it.
// Reversals are silently ignored; the return value reports whether d was applied.
func ApplyDirection(sn *Snake, d core.Direction) bool {
	if core.IsReverse(sn.Direction, d) {
		return false
	}
	sn.Direction = d
	return true
}

// MoveSnake advances the snake one cell in its heading.
// The tail is dropped unless the snake is growing.
func MoveSnake(sn *Snake, grow bool) {
	if len(sn.Segments) == 0 {
		return
	}
	newHead := core.NextPosition(sn.Head(), sn.Direction)
	sn.Segments = append([]core.Position{newHead}, sn.Segments...)
	if !grow {
		sn.Segments = sn.Segments[:len(sn.Segments)-1]
	}
}

// kill marks the snake dead. Segments stay in place.
func kill(sn *Snake, reason string, tick uint64) {
	sn.Alive = false
	sn.DeathReason = reason
	sn.DiedAtTick = tick
}

// Clone returns a deep copy of the snake.
func (sn *Snake) Clone() *Snake {
	c := *sn
	c.Segments = append([]core.Position(nil), sn.Segments...)
	return &c
}
