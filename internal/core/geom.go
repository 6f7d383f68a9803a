// Package core provides fundamental types and utilities for the snake arena.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Position is an integer grid coordinate.
type Position struct {
	X, Y int
}

// Pos is a shorthand constructor for Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position translated by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Chebyshev returns max(|dx|, |dy|) between two positions.
func (p Position) Chebyshev(other Position) int {
	return Max(Abs(p.X-other.X), Abs(p.Y-other.Y))
}

// Manhattan returns |dx| + |dy| between two positions.
func (p Position) Manhattan(other Position) int {
	return Abs(p.X-other.X) + Abs(p.Y-other.Y)
}

// InBounds reports whether pos lies on a w x h board.
// Lower bounds are inclusive, upper bounds exclusive.
func InBounds(pos Position, w, h int) bool {
	return pos.X >= 0 && pos.X < w && pos.Y >= 0 && pos.Y < h
}

// Direction represents a movement direction on the grid.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists all directions in evaluation order.
var Directions = []Direction{DirUp, DirRight, DirDown, DirLeft}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the 180° opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsReverse checks if two directions are opposite.
func IsReverse(d1, d2 Direction) bool {
	return d1.Opposite() == d2
}

// NextPosition returns the cell one step from head in direction d.
func NextPosition(head Position, d Direction) Position {
	dx, dy := d.Delta()
	return head.Add(dx, dy)
}

// Neighbors returns the four orthogonal neighbours of p in evaluation order.
func Neighbors(p Position) [4]Position {
	return [4]Position{
		NextPosition(p, DirUp),
		NextPosition(p, DirRight),
		NextPosition(p, DirDown),
		NextPosition(p, DirLeft),
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
