// Package config provides YAML-based settings loading, per-level overrides and
// the pure formulas that derive level generation parameters.
package config

// Settings is the flat coefficient table read by the engine every tick.
// Engine code treats it as read-only; mutation is an outer-layer concern.
type Settings struct {
	// Board and snakes
	BoardWidth         int `yaml:"board_width"`
	BoardHeight        int `yaml:"board_height"`
	InitialSnakeLength int `yaml:"initial_snake_length"`
	MinSnakeLength     int `yaml:"min_snake_length"`
	HungerThreshold    int `yaml:"hunger_threshold"`
	MultiTimerTicks    int `yaml:"multi_timer_ticks"`

	// Food rewards and age bands
	ApplePoints    int `yaml:"apple_points"`
	RabbitPoints   int `yaml:"rabbit_points"`
	AppleYoungAge  int `yaml:"apple_young_age"`
	AppleAdultAge  int `yaml:"apple_adult_age"`
	AppleMaxAge    int `yaml:"apple_max_age"`
	RabbitYoungAge int `yaml:"rabbit_young_age"`
	RabbitAdultAge int `yaml:"rabbit_adult_age"`
	RabbitMaxAge   int `yaml:"rabbit_max_age"`

	// Reproduction
	AppleMinCooldown       int     `yaml:"apple_min_cooldown"`
	RabbitMinCooldown      int     `yaml:"rabbit_min_cooldown"`
	AppleMaxReproductions  int     `yaml:"apple_max_reproductions"`
	RabbitMaxReproductions int     `yaml:"rabbit_max_reproductions"`
	AppleBaseProbability   float64 `yaml:"apple_base_probability"`
	RabbitBaseProbability  float64 `yaml:"rabbit_base_probability"`
	NeighborRadius         int     `yaml:"neighbor_radius"`
	NeighborCap            int     `yaml:"neighbor_cap"`
	NeighborPenalty        float64 `yaml:"neighbor_penalty"`
	MinFoodOnBoard         int     `yaml:"min_food_on_board"`
	RabbitShare            float64 `yaml:"rabbit_share"`

	// Wall generation
	WallClusterBase       int     `yaml:"wall_cluster_base"`
	WallClusterPerLevel   int     `yaml:"wall_cluster_per_level"`
	WallLengthBase        int     `yaml:"wall_length_base"`
	WallLengthPerLevel    int     `yaml:"wall_length_per_level"`
	WallLengthMax         int     `yaml:"wall_length_max"`
	WallBranchProbability float64 `yaml:"wall_branch_probability"`
	WallSafetyFactor      float64 `yaml:"wall_safety_factor"`
	WallMaxAttempts       int     `yaml:"wall_max_attempts"`

	// Food count and targets
	FoodBase            int `yaml:"food_base"`
	FoodPerLevel        int `yaml:"food_per_level"`
	FoodMax             int `yaml:"food_max"`
	TargetScoreBase     int `yaml:"target_score_base"`
	TargetScorePerLevel int `yaml:"target_score_per_level"`

	// Heuristic bot tuning
	AIVisionRadius   int     `yaml:"ai_vision_radius"` // 0 = whole board
	AIAreaWeight     float64 `yaml:"ai_area_weight"`
	AIEscapeWeight   float64 `yaml:"ai_escape_weight"`
	AIFoodWeight     float64 `yaml:"ai_food_weight"`
	AIFoodAttraction float64 `yaml:"ai_food_attraction"`
	AIImmediateBonus float64 `yaml:"ai_immediate_bonus"`
	AITrapPenalty    float64 `yaml:"ai_trap_penalty"`

	// Presentation
	TickRate int     `yaml:"tick_rate"`
	Palette  Palette `yaml:"palette"`

	// Levels holds sparse per-level patches keyed by level number (1-based).
	Levels map[int]LevelOverride `yaml:"levels,omitempty"`
}

// Palette holds display colors (ANSI codes or hex strings) for the viewer.
type Palette struct {
	Wall   string   `yaml:"wall"`
	Apple  string   `yaml:"apple"`
	Rabbit string   `yaml:"rabbit"`
	Dead   string   `yaml:"dead"`
	Snakes []string `yaml:"snakes"`
}

// SnakeColor returns the palette color for the snake with the given index.
func (p Palette) SnakeColor(i int) string {
	if len(p.Snakes) == 0 {
		return "10"
	}
	if i < 0 {
		i = -i
	}
	return p.Snakes[i%len(p.Snakes)]
}

// LevelOverride patches formula-derived generation parameters for one level.
// Nil fields keep the formula result.
type LevelOverride struct {
	WallCount  *int `yaml:"wall_count,omitempty"`
	WallLength *int `yaml:"wall_length,omitempty"`
	FoodCount  *int `yaml:"food_count,omitempty"`
}

// Clone returns a deep copy, so callers can tweak settings per run without
// sharing maps or slices.
func (s Settings) Clone() Settings {
	c := s
	if s.Palette.Snakes != nil {
		c.Palette.Snakes = append([]string(nil), s.Palette.Snakes...)
	}
	if s.Levels != nil {
		c.Levels = make(map[int]LevelOverride, len(s.Levels))
		for k, v := range s.Levels {
			c.Levels[k] = v
		}
	}
	return c
}

// IntPtr is a helper for building overrides in code.
func IntPtr(v int) *int {
	return &v
}
