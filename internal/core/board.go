package core

import (
	"strings"
)

// Cell is the marker stored in a board cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellApple
	CellRabbit
	CellDeadSnake
	CellSnakeBody
	CellSnakeHead
)

// Rune returns the ASCII glyph used for the cell in text dumps.
func (c Cell) Rune() rune {
	switch c {
	case CellWall:
		return '#'
	case CellApple:
		return '*'
	case CellRabbit:
		return 'r'
	case CellDeadSnake:
		return 'x'
	case CellSnakeBody:
		return 'o'
	case CellSnakeHead:
		return 'O'
	default:
		return '.'
	}
}

// NoOwner marks a cell not owned by any snake.
const NoOwner = -1

// Board is a width x height grid of cell markers.
// It is a projection of entity state, rebuilt every tick, and never the
// source of truth for collisions.
type Board struct {
	width  int
	height int
	cells  [][]Cell
	owners [][]int
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  max(width, 0),
		height: max(height, 0),
	}
	b.allocate()
	b.Clear()
	return b
}

// allocate creates the underlying cell storage.
func (b *Board) allocate() {
	b.cells = make([][]Cell, b.height)
	b.owners = make([][]int, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
		b.owners[y] = make([]int, b.width)
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Clear resets every cell to empty.
func (b *Board) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = CellEmpty
			b.owners[y][x] = NoOwner
		}
	}
}

// Set places a marker at p. Out-of-bounds positions are silently ignored.
func (b *Board) Set(p Position, c Cell) {
	b.SetOwned(p, c, NoOwner)
}

// SetOwned places a marker at p and records the snake that owns it.
func (b *Board) SetOwned(p Position, c Cell, owner int) {
	if !InBounds(p, b.width, b.height) {
		return
	}
	b.cells[p.Y][p.X] = c
	b.owners[p.Y][p.X] = owner
}

// Get returns the marker at p, or CellWall for out-of-bounds positions.
func (b *Board) Get(p Position) Cell {
	if !InBounds(p, b.width, b.height) {
		return CellWall
	}
	return b.cells[p.Y][p.X]
}

// Owner returns the snake id painted at p, or NoOwner.
func (b *Board) Owner(p Position) int {
	if !InBounds(p, b.width, b.height) {
		return NoOwner
	}
	return b.owners[p.Y][p.X]
}

// Count returns how many cells hold the given marker.
func (b *Board) Count(c Cell) int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] == c {
				n++
			}
		}
	}
	return n
}

// String converts the board to newline-separated rows of glyphs.
func (b *Board) String() string {
	rows := make([]string, b.height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns the specified row as a string.
func (b *Board) Row(y int) string {
	if y < 0 || y >= b.height {
		return strings.Repeat(" ", b.width)
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.cells[y][x].Rune())
	}
	return sb.String()
}
