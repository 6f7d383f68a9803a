package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/engine"
)

// Renderer draws boards with the configured palette.
type Renderer struct {
	palette config.Palette
	cells   map[core.Cell]lipgloss.Style
	snakes  []lipgloss.Style
	hud     lipgloss.Style
	dim     lipgloss.Style
}

// NewRenderer builds the styles for a palette.
func NewRenderer(p config.Palette) *Renderer {
	r := &Renderer{
		palette: p,
		cells: map[core.Cell]lipgloss.Style{
			core.CellEmpty:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
			core.CellWall:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Wall)),
			core.CellApple:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Apple)),
			core.CellRabbit:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Rabbit)),
			core.CellDeadSnake: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dead)),
		},
		hud: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		dim: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for i := range max(len(p.Snakes), 1) {
		r.snakes = append(r.snakes, lipgloss.NewStyle().Foreground(lipgloss.Color(p.SnakeColor(i))))
	}
	return r
}

// snakeStyle returns the style for a snake id (1-based).
func (r *Renderer) snakeStyle(id int) lipgloss.Style {
	if id <= 0 {
		return r.cells[core.CellEmpty]
	}
	return r.snakes[(id-1)%len(r.snakes)]
}

// styleAt picks the style for one board cell.
func (r *Renderer) styleAt(b *core.Board, p core.Position) lipgloss.Style {
	c := b.Get(p)
	if c == core.CellSnakeBody || c == core.CellSnakeHead {
		s := r.snakeStyle(b.Owner(p))
		if c == core.CellSnakeHead {
			s = s.Bold(true)
		}
		return s
	}
	if s, ok := r.cells[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// RenderBoard converts a board to a styled string.
// Groups adjacent cells with the same style key to minimize ANSI escape sequences.
func (r *Renderer) RenderBoard(b *core.Board) string {
	type styleKey struct {
		cell  core.Cell
		owner int
	}

	var sb strings.Builder
	sb.Grow(b.Width()*b.Height()*2 + b.Height())

	for y := range b.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < b.Width() {
			start := core.Pos(x, y)
			startKey := styleKey{b.Get(start), b.Owner(start)}

			var run strings.Builder
			for x < b.Width() {
				p := core.Pos(x, y)
				if (styleKey{b.Get(p), b.Owner(p)}) != startKey {
					break
				}
				run.WriteRune(b.Get(p).Rune())
				x++
			}

			sb.WriteString(r.styleAt(b, start).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderHUD draws the level line and one line per snake.
func (r *Renderer) RenderHUD(state *engine.GameState, s *config.Settings) string {
	var b strings.Builder

	header := fmt.Sprintf("Level %d  Tick %d", state.Level, state.Tick)
	switch state.Mode {
	case config.ModeSingle:
		header += fmt.Sprintf("  Target %d", s.CumulativeTarget(state.Level))
	case config.ModeMulti:
		header += fmt.Sprintf("  Time %d", state.TimeRemaining)
	}
	b.WriteString(r.hud.Render(header))

	for _, sn := range state.Snakes {
		b.WriteString("\n")
		line := fmt.Sprintf("%-12s score %-4d len %-3d won %d", sn.Name, sn.Score, sn.Len(), sn.LevelsWon)
		if sn.Algorithm != "" {
			line += "  [" + sn.Algorithm + "]"
		}
		if !sn.Alive {
			b.WriteString(r.dim.Render(line + "  " + sn.DeathReason))
			continue
		}
		b.WriteString(r.snakeStyle(sn.ID).Render(line))
	}
	return b.String()
}
