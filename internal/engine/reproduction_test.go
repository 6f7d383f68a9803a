package engine

import (
	"testing"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// adultRabbit returns a rabbit that becomes eligible after one aging step.
func adultRabbit(s config.Settings, p core.Position) Food {
	f := NewFood(FoodRabbit, p)
	f.Age = s.RabbitYoungAge - 1
	f.Cooldown = s.RabbitMinCooldown - 1
	return f
}

func TestReproductionForced(t *testing.T) {
	s := testSettings()
	s.RabbitBaseProbability = 1
	ctx := testContext(s, constRNG{0})

	origin := core.Pos(10, 10)
	state := newTestState(20, 20, config.ModeSingle)
	state.Food = []Food{adultRabbit(s, origin)}

	var res TickResult
	ApplyReproduction(state, ctx, &res)

	if len(state.Food) != 2 {
		t.Fatalf("food count = %d, expected 2", len(state.Food))
	}
	parent, child := state.Food[0], state.Food[1]

	if d := child.Pos.Chebyshev(origin); d < 1 || d > 2 {
		t.Errorf("child at distance %d, expected 1..2", d)
	}
	if child.Kind != FoodRabbit || child.Age != 0 || child.Cooldown != 0 {
		t.Errorf("child should be a newborn rabbit, got %+v", child)
	}
	if parent.Cooldown != 0 {
		t.Errorf("parent cooldown = %d, expected reset to 0", parent.Cooldown)
	}
	if parent.Reproductions != 1 {
		t.Errorf("parent reproductions = %d, expected 1", parent.Reproductions)
	}
	if parent.Age != s.RabbitYoungAge {
		t.Errorf("parent age = %d, expected %d", parent.Age, s.RabbitYoungAge)
	}

	if len(res.Events) != 1 {
		t.Fatalf("expected one event, got %+v", res.Events)
	}
	born, ok := res.Events[0].(FoodBorn)
	if !ok || born.Parent != origin || born.Child != child.Pos {
		t.Errorf("unexpected event %+v", res.Events[0])
	}
}

func TestReproductionGates(t *testing.T) {
	s := testSettings()
	s.RabbitBaseProbability = 1
	s.NeighborCap = 2

	tests := []struct {
		name   string
		mutate func(state *GameState)
	}{
		{"too young", func(state *GameState) {
			state.Food[0].Age = 0
		}},
		{"past adult age", func(state *GameState) {
			state.Food[0].Age = s.RabbitAdultAge
		}},
		{"cooldown not elapsed", func(state *GameState) {
			state.Food[0].Cooldown = 0
		}},
		{"reproduction cap", func(state *GameState) {
			state.Food[0].Reproductions = s.RabbitMaxReproductions
		}},
		{"crowded", func(state *GameState) {
			state.Food = append(state.Food,
				NewFood(FoodApple, core.Pos(12, 10)),
				NewFood(FoodApple, core.Pos(8, 10)))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := testContext(s, constRNG{0})
			state := newTestState(20, 20, config.ModeSingle)
			state.Food = []Food{adultRabbit(s, core.Pos(10, 10))}
			tc.mutate(state)
			before := len(state.Food)

			var res TickResult
			ApplyReproduction(state, ctx, &res)

			if len(state.Food) != before {
				t.Errorf("food count = %d, expected %d", len(state.Food), before)
			}
			if state.Food[0].Reproductions > s.RabbitMaxReproductions {
				t.Error("reproduction cap exceeded")
			}
		})
	}
}

func TestReproductionNoFreeCell(t *testing.T) {
	s := testSettings()
	s.RabbitBaseProbability = 1
	s.NeighborCap = 100
	ctx := testContext(s, constRNG{0})

	// 1x1 board: no sibling cell exists
	state := newTestState(1, 1, config.ModeSingle)
	state.Food = []Food{adultRabbit(s, core.Pos(0, 0))}

	var res TickResult
	ApplyReproduction(state, ctx, &res)

	if len(state.Food) != 1 {
		t.Errorf("food count = %d, expected 1", len(state.Food))
	}
	if state.Food[0].Reproductions != 0 {
		t.Error("failed placement must not count as a reproduction")
	}
}

func TestReproductionProbability(t *testing.T) {
	tests := []struct {
		name      string
		base      float64
		cooldown  int
		penalty   float64
		neighbors int
		expected  float64
	}{
		{"plain", 0.01, 10, 0.2, 0, 0.1},
		{"penalised", 0.01, 10, 0.2, 2, 0.06},
		{"clamped high", 0.5, 10, 0, 0, 1},
		{"clamped low", 0.01, 10, 0.5, 3, 0},
		{"zero cooldown", 0.5, 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ReproductionProbability(tc.base, tc.cooldown, tc.penalty, tc.neighbors)
			if diff := got - tc.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("probability = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPurgeAndReplenish(t *testing.T) {
	s := testSettings()
	s.MinFoodOnBoard = 3
	ctx := testContext(s, core.NewLCG(3))

	state := newTestState(20, 20, config.ModeSingle)
	old := NewFood(FoodApple, core.Pos(5, 5))
	old.Age = s.AppleMaxAge
	state.Food = []Food{old}

	var res TickResult
	ApplyReproduction(state, ctx, &res)

	if state.FoodAt(core.Pos(5, 5)) >= 0 {
		t.Error("food past its maximum age should be purged")
	}
	if len(state.Food) != s.MinFoodOnBoard {
		t.Errorf("food count = %d, expected %d", len(state.Food), s.MinFoodOnBoard)
	}
	spawned := 0
	for _, e := range res.Events {
		if fs, ok := e.(FoodSpawned); ok {
			spawned++
			if fs.Kind != FoodApple {
				t.Errorf("replenished kind = %v, expected apple", fs.Kind)
			}
		}
	}
	if spawned != s.MinFoodOnBoard {
		t.Errorf("FoodSpawned events = %d, expected %d", spawned, s.MinFoodOnBoard)
	}
}

func TestNewbornsSkipCurrentTick(t *testing.T) {
	s := testSettings()
	s.RabbitBaseProbability = 1
	ctx := testContext(s, constRNG{0})

	state := newTestState(20, 20, config.ModeSingle)
	state.Food = []Food{adultRabbit(s, core.Pos(10, 10))}

	var res TickResult
	ApplyReproduction(state, ctx, &res)

	if len(state.Food) != 2 {
		t.Fatalf("food count = %d, expected 2", len(state.Food))
	}
	if state.Food[1].Age != 0 {
		t.Errorf("newborn aged in its birth tick: %+v", state.Food[1])
	}
}
