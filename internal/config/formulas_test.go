package config

import "testing"

func TestFormulas(t *testing.T) {
	s := DefaultSettings()
	s.Levels = nil

	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"wall count level 1 normal", s.WallCount(1, Normal), 3},
		{"wall count level 3 normal", s.WallCount(3, Normal), 5},
		{"wall count level 3 hard", s.WallCount(3, Hard), 8},   // 7.5 rounds up
		{"wall count level 1 easy", s.WallCount(1, Easy), 2},   // 1.5 rounds up
		{"wall length level 1", s.WallLength(1), 4},
		{"wall length capped", s.WallLength(50), 12},
		{"food count level 2", s.FoodCount(2), 5},
		{"food count capped", s.FoodCount(40), 12},
		{"target level 1", s.TargetScore(1), 8},
		{"target level 3", s.TargetScore(3), 16},
		{"cumulative level 1", s.CumulativeTarget(1), 8},
		{"cumulative level 3", s.CumulativeTarget(3), 8 + 12 + 16},
		{"safety radius", s.SafetyRadius(), 5}, // ceil(1.5 * 3)
		{"rabbits of 4", s.RabbitCount(4), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %d, expected %d", tc.got, tc.expected)
			}
		})
	}
}

func TestLevelOverridesReplaceFormula(t *testing.T) {
	s := DefaultSettings()
	s.Levels = map[int]LevelOverride{
		2: {WallCount: IntPtr(0), WallLength: IntPtr(7), FoodCount: IntPtr(1)},
	}

	if s.WallCount(2, Hard) != 0 {
		t.Errorf("WallCount(2) = %d, expected override 0", s.WallCount(2, Hard))
	}
	if s.WallLength(2) != 7 {
		t.Errorf("WallLength(2) = %d, expected override 7", s.WallLength(2))
	}
	if s.FoodCount(2) != 1 {
		t.Errorf("FoodCount(2) = %d, expected override 1", s.FoodCount(2))
	}
	// Other levels still use formulas
	if s.FoodCount(1) != s.FoodBase {
		t.Errorf("FoodCount(1) = %d, expected formula %d", s.FoodCount(1), s.FoodBase)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
		wantErr  bool
	}{
		{"easy", Easy, false},
		{"", Normal, false},
		{"HARD", Hard, false},
		{"nightmare", Normal, true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     GameConfig
		wantErr bool
	}{
		{"single bot", GameConfig{Bots: 1, Difficulty: Normal}, false},
		{"human vs bots", GameConfig{Players: 1, Bots: 3, Difficulty: Hard}, false},
		{"nobody", GameConfig{Difficulty: Normal}, true},
		{"too many", GameConfig{Bots: MaxAgents + 1, Difficulty: Normal}, true},
		{"single with two", GameConfig{Bots: 2, Mode: ModeSingle, Difficulty: Normal}, true},
		{"bad mode", GameConfig{Bots: 2, Mode: "coop", Difficulty: Normal}, true},
		{"bad difficulty", GameConfig{Bots: 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGameConfigNamesAndMode(t *testing.T) {
	g := GameConfig{Players: 1, Bots: 2, Names: []string{"Ann"}}

	if g.Name(0) != "Ann" || g.Name(1) != "Bot 1" || g.Name(2) != "Bot 2" {
		t.Errorf("unexpected names: %q %q %q", g.Name(0), g.Name(1), g.Name(2))
	}
	if g.IsBot(0) || !g.IsBot(1) {
		t.Error("humans take the first slots")
	}
	if g.ResolvedMode() != ModeMulti {
		t.Errorf("mode = %q, expected multi", g.ResolvedMode())
	}
	if (GameConfig{Bots: 1}).ResolvedMode() != ModeSingle {
		t.Error("single agent should resolve to single mode")
	}
}
