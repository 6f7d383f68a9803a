package config

import "fmt"

// GameMode selects the level completion rules.
type GameMode string

const (
	// ModeSingle ends a level on the cumulative target score or on the agent's death.
	ModeSingle GameMode = "single"
	// ModeMulti ends a level when at most one snake is alive or the timer runs out.
	ModeMulti GameMode = "multi"
)

// MaxAgents caps the number of snakes on one board.
const MaxAgents = 8

// GameConfig is the per-game input consumed once at level initialization.
type GameConfig struct {
	Players    int        // Human-controlled snakes
	Bots       int        // Bot-controlled snakes
	Names      []string   // Display names by participant index; missing names are generated
	Difficulty Difficulty // Drives wall-count scaling
	Mode       GameMode   // Empty derives from the agent count
	Algorithms []string   // Bot algorithm by participant index, used by the arena
}

// Agents returns the total number of snakes.
func (g GameConfig) Agents() int {
	return g.Players + g.Bots
}

// ResolvedMode returns the explicit mode, or derives it from the agent count.
func (g GameConfig) ResolvedMode() GameMode {
	if g.Mode != "" {
		return g.Mode
	}
	if g.Agents() <= 1 {
		return ModeSingle
	}
	return ModeMulti
}

// Name returns the display name for a participant index.
func (g GameConfig) Name(i int) string {
	if i >= 0 && i < len(g.Names) && g.Names[i] != "" {
		return g.Names[i]
	}
	if i < g.Players {
		return fmt.Sprintf("Player %d", i+1)
	}
	return fmt.Sprintf("Bot %d", i-g.Players+1)
}

// IsBot reports whether the participant index is bot-controlled.
// Humans take the first slots.
func (g GameConfig) IsBot(i int) bool {
	return i >= g.Players
}

// Validate rejects malformed game input at the configuration boundary.
func (g GameConfig) Validate() error {
	if g.Players < 0 || g.Bots < 0 {
		return fmt.Errorf("config: invalid game: %w", ValidationError{Field: "players/bots", Message: "must not be negative"})
	}
	if g.Agents() < 1 {
		return fmt.Errorf("config: invalid game: %w", ValidationError{Field: "players/bots", Message: "need at least one snake"})
	}
	if g.Agents() > MaxAgents {
		return fmt.Errorf("config: invalid game: %w", ValidationError{
			Field:   "players/bots",
			Message: fmt.Sprintf("at most %d snakes supported, got %d", MaxAgents, g.Agents()),
		})
	}
	switch g.Mode {
	case "", ModeSingle, ModeMulti:
	default:
		return fmt.Errorf("config: invalid game: %w", ValidationError{Field: "mode", Message: "expected single or multi, got " + string(g.Mode)})
	}
	if g.ResolvedMode() == ModeSingle && g.Agents() != 1 {
		return fmt.Errorf("config: invalid game: %w", ValidationError{Field: "mode", Message: "single mode needs exactly one snake"})
	}
	if g.ResolvedMode() == ModeMulti && g.Agents() < 2 {
		return fmt.Errorf("config: invalid game: %w", ValidationError{Field: "mode", Message: "multi mode needs at least two snakes"})
	}
	if g.Difficulty < Easy || g.Difficulty > Hard {
		return fmt.Errorf("config: invalid game: %w", ValidationError{Field: "difficulty", Message: "out of range"})
	}
	return nil
}
