package config

import "fmt"

// ValidationError describes a rejected configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks the settings table for values the engine cannot run with.
func (s Settings) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{s.BoardWidth >= 5, "board_width", "must be at least 5"},
		{s.BoardHeight >= 5, "board_height", "must be at least 5"},
		{s.InitialSnakeLength >= 1, "initial_snake_length", "must be at least 1"},
		{s.InitialSnakeLength*2 <= min(s.BoardWidth, s.BoardHeight), "initial_snake_length", "must fit twice across the board"},
		{s.MinSnakeLength >= 1, "min_snake_length", "must be at least 1"},
		{s.MinSnakeLength <= s.InitialSnakeLength, "min_snake_length", "must not exceed initial_snake_length"},
		{s.HungerThreshold >= 1, "hunger_threshold", "must be positive"},
		{s.MultiTimerTicks >= 1, "multi_timer_ticks", "must be positive"},
		{s.AppleYoungAge <= s.AppleAdultAge && s.AppleAdultAge <= s.AppleMaxAge, "apple_*_age", "must satisfy young <= adult <= max"},
		{s.RabbitYoungAge <= s.RabbitAdultAge && s.RabbitAdultAge <= s.RabbitMaxAge, "rabbit_*_age", "must satisfy young <= adult <= max"},
		{s.AppleBaseProbability >= 0 && s.RabbitBaseProbability >= 0, "*_base_probability", "must not be negative"},
		{s.NeighborRadius >= 0, "neighbor_radius", "must not be negative"},
		{s.NeighborPenalty >= 0, "neighbor_penalty", "must not be negative"},
		{s.RabbitShare >= 0 && s.RabbitShare <= 1, "rabbit_share", "must be within [0, 1]"},
		{s.WallBranchProbability >= 0 && s.WallBranchProbability <= 1, "wall_branch_probability", "must be within [0, 1]"},
		{s.WallSafetyFactor >= 0, "wall_safety_factor", "must not be negative"},
		{s.WallMaxAttempts >= 1, "wall_max_attempts", "must be positive"},
		{s.WallLengthMax >= 1, "wall_length_max", "must be positive"},
		{s.FoodMax >= 0, "food_max", "must not be negative"},
		{s.TargetScoreBase >= 1, "target_score_base", "must be positive"},
		{s.TargetScorePerLevel >= 0, "target_score_per_level", "must not be negative"},
		{s.AIVisionRadius >= 0, "ai_vision_radius", "must not be negative"},
		{s.TickRate >= 1, "tick_rate", "must be positive"},
	}

	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("config: invalid settings: %w", ValidationError{Field: c.field, Message: c.message})
		}
	}

	for level, o := range s.Levels {
		if level < 1 {
			return fmt.Errorf("config: invalid settings: %w", ValidationError{
				Field:   "levels",
				Message: fmt.Sprintf("level key %d must be >= 1", level),
			})
		}
		for name, v := range map[string]*int{"wall_count": o.WallCount, "wall_length": o.WallLength, "food_count": o.FoodCount} {
			if v != nil && *v < 0 {
				return fmt.Errorf("config: invalid settings: %w", ValidationError{
					Field:   fmt.Sprintf("levels.%d.%s", level, name),
					Message: "must not be negative",
				})
			}
		}
	}

	return nil
}
