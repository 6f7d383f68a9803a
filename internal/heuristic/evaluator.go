// Package heuristic implements the flood-fill bot: every legal heading is
// scored by reachable area, escape routes and food attraction, and the best
// one wins. Evaluation only reads the game state.
package heuristic

import (
	"math"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/engine"
)

// trapMargin is added to the snake length to get the smallest safe area.
const trapMargin = 2

// CandidateScore is the breakdown for one heading.
type CandidateScore struct {
	Direction  core.Direction
	Legal      bool
	Score      float64 // -Inf when illegal
	Area       int
	Escapes    int
	Attraction float64
	Growing    bool
	Trapped    bool
}

// Decision is the evaluator's answer for one snake on one tick.
type Decision struct {
	Direction  core.Direction
	Score      float64
	Stuck      bool // no legal heading; Direction keeps the current one
	Candidates []CandidateScore
}

// Evaluator scores headings using the AI weights from the settings table.
type Evaluator struct {
	Settings *config.Settings
}

// New creates an evaluator reading the given settings.
func New(s *config.Settings) *Evaluator {
	return &Evaluator{Settings: s}
}

// Choose returns the heading the evaluator picks for the snake.
func (e *Evaluator) Choose(state *engine.GameState, snakeID int) core.Direction {
	return e.Evaluate(state, snakeID).Direction
}

// Evaluate scores every non-reversing heading of the snake in core.Directions
// order. The first maximum wins; when nothing is legal the current heading is
// kept and the decision is marked stuck.
func (e *Evaluator) Evaluate(state *engine.GameState, snakeID int) Decision {
	sn := state.Snake(snakeID)
	if sn == nil || !sn.Alive || sn.Len() == 0 {
		var dir core.Direction
		if sn != nil {
			dir = sn.Direction
		}
		return Decision{Direction: dir, Score: math.Inf(-1), Stuck: true}
	}

	blocked := blockedGrid(state, sn)
	decision := Decision{Direction: sn.Direction, Score: math.Inf(-1), Stuck: true}

	for _, d := range core.Directions {
		if core.IsReverse(sn.Direction, d) {
			continue
		}
		c := e.scoreCandidate(state, sn, d, blocked)
		decision.Candidates = append(decision.Candidates, c)
		if c.Legal && (decision.Stuck || c.Score > decision.Score) {
			decision.Direction = d
			decision.Score = c.Score
			decision.Stuck = false
		}
	}

	return decision
}

// scoreCandidate evaluates a single heading against the pre-tick state.
func (e *Evaluator) scoreCandidate(state *engine.GameState, sn *engine.Snake, d core.Direction, blocked Grid) CandidateScore {
	s := e.Settings
	next := core.NextPosition(sn.Head(), d)
	c := CandidateScore{Direction: d, Score: math.Inf(-1)}

	if !IsLegal(state, sn, d) {
		return c
	}
	c.Legal = true
	c.Growing = state.FoodAt(next) >= 0

	// The own tail vacates unless the snake grows this tick
	tail := sn.Tail()
	if !c.Growing && sn.Len() > 1 {
		blocked.Set(tail, false)
		defer blocked.Set(tail, true)
	}

	c.Area = FloodFill(blocked, state.Width, state.Height, next)
	for _, n := range core.Neighbors(next) {
		if !blocked.Blocked(n) {
			c.Escapes++
		}
	}
	c.Attraction = e.foodAttraction(state, next)

	grow := 0
	immediate := 0.0
	if c.Growing {
		grow = 1
		immediate = s.AIImmediateBonus
	}
	trap := 0.0
	if c.Area < sn.Len()+grow+trapMargin {
		c.Trapped = true
		trap = s.AITrapPenalty
	}

	c.Score = s.AIAreaWeight*float64(c.Area) +
		s.AIEscapeWeight*float64(c.Escapes) +
		s.AIFoodWeight*c.Attraction +
		immediate -
		trap
	return c
}

// foodAttraction scores the nearest visible food from p.
func (e *Evaluator) foodAttraction(state *engine.GameState, p core.Position) float64 {
	radius := e.Settings.AIVisionRadius
	nearest := -1
	best := 0
	for i, f := range state.Food {
		d := f.Pos.Chebyshev(p)
		if radius > 0 && d > radius {
			continue
		}
		if nearest < 0 || d < best {
			nearest, best = i, d
		}
	}
	if nearest < 0 {
		return 0
	}
	pts := engine.Points(state.Food[nearest].Kind, e.Settings)
	return float64(pts) * e.Settings.AIFoodAttraction / float64(best+1)
}

// IsLegal reports whether heading d keeps the snake alive through the
// movement stage: it must stay on the board, miss every wall and every living
// body. The own tail counts as free unless the snake grows onto it.
func IsLegal(state *engine.GameState, sn *engine.Snake, d core.Direction) bool {
	next := core.NextPosition(sn.Head(), d)
	if engine.CollidesWithWall(next, state) {
		return false
	}
	if engine.CollidesWithSnake(next, state.Snakes, sn.ID, false) {
		return false
	}
	return !hitsOwnBody(sn, next, state.FoodAt(next) >= 0)
}

// LegalDirections lists the legal non-reversing headings in core.Directions order.
func LegalDirections(state *engine.GameState, snakeID int) []core.Direction {
	sn := state.Snake(snakeID)
	if sn == nil || !sn.Alive || sn.Len() == 0 {
		return nil
	}
	var out []core.Direction
	for _, d := range core.Directions {
		if !core.IsReverse(sn.Direction, d) && IsLegal(state, sn, d) {
			out = append(out, d)
		}
	}
	return out
}

// hitsOwnBody reports whether moving the head onto p runs into the snake's own
// body. The tail only counts when the snake is growing.
func hitsOwnBody(sn *engine.Snake, p core.Position, growing bool) bool {
	end := sn.Len()
	if !growing {
		end--
	}
	for i := 1; i < end; i++ {
		if sn.Segments[i] == p {
			return true
		}
	}
	return false
}

// blockedGrid marks walls and every living body. Other snakes' tails are left
// free because they vacate during the move; the own tail stays blocked and is
// released per candidate.
func blockedGrid(state *engine.GameState, self *engine.Snake) Grid {
	g := NewGrid(state.Width, state.Height)
	for _, w := range state.WallList {
		g.Set(w, true)
	}
	for _, sn := range state.Snakes {
		if !sn.Alive {
			continue
		}
		for _, seg := range sn.Segments {
			g.Set(seg, true)
		}
		if sn.ID != self.ID && sn.Len() > 1 {
			g.Set(sn.Tail(), false)
		}
	}
	return g
}
