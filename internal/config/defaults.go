package config

import (
	_ "embed"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hardcoded default settings.
// It mirrors defaults/settings.yaml and is the fallback when the embedded
// file cannot be parsed.
func DefaultSettings() Settings {
	return Settings{
		BoardWidth:         32,
		BoardHeight:        24,
		InitialSnakeLength: 3,
		MinSnakeLength:     2,
		HungerThreshold:    40,
		MultiTimerTicks:    900,

		ApplePoints:    2,
		RabbitPoints:   1,
		AppleYoungAge:  30,
		AppleAdultAge:  200,
		AppleMaxAge:    320,
		RabbitYoungAge: 15,
		RabbitAdultAge: 120,
		RabbitMaxAge:   220,

		AppleMinCooldown:       25,
		RabbitMinCooldown:      12,
		AppleMaxReproductions:  2,
		RabbitMaxReproductions: 4,
		AppleBaseProbability:   0.002,
		RabbitBaseProbability:  0.004,
		NeighborRadius:         2,
		NeighborCap:            4,
		NeighborPenalty:        0.2,
		MinFoodOnBoard:         1,
		RabbitShare:            0.5,

		WallClusterBase:       3,
		WallClusterPerLevel:   1,
		WallLengthBase:        4,
		WallLengthPerLevel:    1,
		WallLengthMax:         12,
		WallBranchProbability: 0.3,
		WallSafetyFactor:      1.5,
		WallMaxAttempts:       25,

		FoodBase:            4,
		FoodPerLevel:        1,
		FoodMax:             12,
		TargetScoreBase:     8,
		TargetScorePerLevel: 4,

		AIVisionRadius:   0,
		AIAreaWeight:     1.0,
		AIEscapeWeight:   4.0,
		AIFoodWeight:     6.0,
		AIFoodAttraction: 10.0,
		AIImmediateBonus: 25.0,
		AITrapPenalty:    1000.0,

		TickRate: 10,
		Palette: Palette{
			Wall:   "245",
			Apple:  "9",
			Rabbit: "15",
			Dead:   "240",
			Snakes: []string{"10", "12", "11", "13", "14", "208"},
		},

		Levels: map[int]LevelOverride{
			1: {WallCount: IntPtr(2)},
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
