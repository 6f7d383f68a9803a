package engine

import (
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// FoodKind discriminates food entities.
type FoodKind int

const (
	FoodApple FoodKind = iota
	FoodRabbit
)

func (k FoodKind) String() string {
	switch k {
	case FoodApple:
		return "apple"
	case FoodRabbit:
		return "rabbit"
	default:
		return "unknown"
	}
}

// Cell returns the board marker for the kind.
func (k FoodKind) Cell() core.Cell {
	if k == FoodRabbit {
		return core.CellRabbit
	}
	return core.CellApple
}

// Food is a consumable, aging, reproducing entity. All kinds share the same
// lifecycle fields; kind-specific numbers come from the lookups below.
type Food struct {
	Kind          FoodKind
	Pos           core.Position
	Age           int // ticks since birth, never resets
	Cooldown      int // ticks since birth or last reproduction
	Reproductions int
}

// NewFood creates a newborn food entity.
func NewFood(kind FoodKind, pos core.Position) Food {
	return Food{Kind: kind, Pos: pos}
}

// Points returns the score awarded for eating the kind.
func Points(k FoodKind, s *config.Settings) int {
	if k == FoodRabbit {
		return s.RabbitPoints
	}
	return s.ApplePoints
}

// YoungAge returns the age at which the kind becomes adult.
func YoungAge(k FoodKind, s *config.Settings) int {
	if k == FoodRabbit {
		return s.RabbitYoungAge
	}
	return s.AppleYoungAge
}

// AdultAge returns the last age at which the kind may reproduce.
func AdultAge(k FoodKind, s *config.Settings) int {
	if k == FoodRabbit {
		return s.RabbitAdultAge
	}
	return s.AppleAdultAge
}

// MaxAge returns the age after which the kind is purged.
func MaxAge(k FoodKind, s *config.Settings) int {
	if k == FoodRabbit {
		return s.RabbitMaxAge
	}
	return s.AppleMaxAge
}

// MinCooldown returns the ticks required between reproductions.
func MinCooldown(k FoodKind, s *config.Settings) int {
	if k == FoodRabbit {
		return s.RabbitMinCooldown
	}
	return s.AppleMinCooldown
}

// MaxReproductions returns the lifetime reproduction cap.
func MaxReproductions(k FoodKind, s *config.Settings) int {
	if k == FoodRabbit {
		return s.RabbitMaxReproductions
	}
	return s.AppleMaxReproductions
}

// BaseProbability returns the per-cooldown-tick reproduction chance.
func BaseProbability(k FoodKind, s *config.Settings) float64 {
	if k == FoodRabbit {
		return s.RabbitBaseProbability
	}
	return s.AppleBaseProbability
}

// IsAdult reports whether f is inside its reproduction age band.
func IsAdult(f Food, s *config.Settings) bool {
	return f.Age >= YoungAge(f.Kind, s) && f.Age <= AdultAge(f.Kind, s)
}
