package config

import "strings"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Difficulty is the numeric difficulty stored on the game state (1 = easy).
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Normal
	Hard
)

// ParseDifficulty converts a preset name into a Difficulty.
// An empty name selects Normal.
func ParseDifficulty(name string) (Difficulty, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case DifficultyEasy:
		return Easy, nil
	case DifficultyNormal, "":
		return Normal, nil
	case DifficultyHard:
		return Hard, nil
	default:
		return Normal, ValidationError{Field: "difficulty", Message: "expected easy, normal or hard, got " + name}
	}
}

// Scale returns the wall-count multiplier for the difficulty.
func (d Difficulty) Scale() float64 {
	switch d {
	case Easy:
		return 0.5
	case Hard:
		return 1.5
	default:
		return 1.0
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return string(DifficultyEasy)
	case Hard:
		return string(DifficultyHard)
	default:
		return string(DifficultyNormal)
	}
}
