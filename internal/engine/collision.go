package engine

import "github.com/vovakirdan/snake-arena/internal/core"

// CollidesWithWall reports whether pos is out of bounds or on a wall.
// The board edge acts as an implicit wall.
func CollidesWithWall(pos core.Position, state *GameState) bool {
	if !core.InBounds(pos, state.Width, state.Height) {
		return true
	}
	return state.IsWall(pos)
}

// CollidesWithSnake reports whether pos lies on the body of a living snake.
// excludeID skips one snake entirely (NoSnake skips none). With ignoreTails
// every snake's last segment is treated as already vacated.
func CollidesWithSnake(pos core.Position, snakes []*Snake, excludeID int, ignoreTails bool) bool {
	for _, sn := range snakes {
		if !sn.Alive || sn.ID == excludeID {
			continue
		}
		if !ignoreTails {
			if sn.Occupies(pos) {
				return true
			}
			continue
		}
		for _, seg := range sn.Segments[:max(len(sn.Segments)-1, 0)] {
			if seg == pos {
				return true
			}
		}
	}
	return false
}

// SelfCollision reports whether the head overlaps any other own segment.
func SelfCollision(sn *Snake) bool {
	if len(sn.Segments) < 2 {
		return false
	}
	head := sn.Segments[0]
	for _, seg := range sn.Segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// occupiedBySnake reports whether any living snake segment lies on p.
func occupiedBySnake(p core.Position, snakes []*Snake) bool {
	return CollidesWithSnake(p, snakes, NoSnake, false)
}
