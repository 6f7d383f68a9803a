package heuristic

import "github.com/vovakirdan/snake-arena/internal/core"

// Grid is a blocked-cell mask indexed [y][x].
type Grid [][]bool

// NewGrid creates an all-free w x h grid.
func NewGrid(w, h int) Grid {
	g := make(Grid, h)
	for y := range g {
		g[y] = make([]bool, w)
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Blocked reports whether p is out of bounds or marked blocked.
func (g Grid) Blocked(p core.Position) bool {
	if !core.InBounds(p, g.Width(), g.Height()) {
		return true
	}
	return g[p.Y][p.X]
}

// Set marks p blocked or free. Out-of-bounds positions are ignored.
func (g Grid) Set(p core.Position, blocked bool) {
	if core.InBounds(p, g.Width(), g.Height()) {
		g[p.Y][p.X] = blocked
	}
}

// FloodFill counts the free cells reachable from start by orthogonal steps.
// The start cell itself is not counted and may be blocked, so the result is 0
// exactly when every neighbour of start is blocked or off the board.
func FloodFill(blocked Grid, w, h int, start core.Position) int {
	if !core.InBounds(start, w, h) {
		return 0
	}

	visited := make([]bool, w*h)
	visited[start.Y*w+start.X] = true
	queue := []core.Position{start}
	count := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range core.Neighbors(cur) {
			if !core.InBounds(n, w, h) || blocked[n.Y][n.X] {
				continue
			}
			idx := n.Y*w + n.X
			if visited[idx] {
				continue
			}
			visited[idx] = true
			count++
			queue = append(queue, n)
		}
	}

	return count
}
