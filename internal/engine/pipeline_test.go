package engine

import (
	"testing"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

func TestEatRabbitAhead(t *testing.T) {
	ctx := testContext(testSettings(), nil)
	sn := newSnake(1, core.DirRight, core.Pos(5, 5), core.Pos(4, 5), core.Pos(3, 5))
	state := newTestState(20, 20, config.ModeSingle, sn)
	state.Food = []Food{NewFood(FoodRabbit, core.Pos(6, 5))}
	sn.TicksWithoutFood = 7

	res := Tick(state, ctx)

	if sn.Score != 1 {
		t.Errorf("score = %d, expected 1", sn.Score)
	}
	if sn.Len() != 4 {
		t.Errorf("length = %d, expected 4", sn.Len())
	}
	if len(state.Food) != 0 {
		t.Errorf("food count = %d, expected rabbit removed", len(state.Food))
	}
	if sn.Head() != core.Pos(6, 5) {
		t.Errorf("head = %v, expected (6,5)", sn.Head())
	}
	if sn.TicksWithoutFood != 0 {
		t.Errorf("ticksWithoutFood = %d, expected reset to 0", sn.TicksWithoutFood)
	}

	var eaten *FoodEaten
	for _, e := range res.Events {
		if fe, ok := e.(FoodEaten); ok {
			eaten = &fe
		}
	}
	if eaten == nil {
		t.Fatal("expected FoodEaten event")
	}
	if eaten.SnakeID != 1 || eaten.Pos != core.Pos(6, 5) || eaten.NewScore != 1 {
		t.Errorf("unexpected event: %+v", *eaten)
	}
	if state.Board.Get(core.Pos(6, 5)) != core.CellSnakeHead {
		t.Error("board should show the head on the eaten cell")
	}
}

func TestMoveIntoOtherSnakeBody(t *testing.T) {
	ctx := testContext(testSettings(), nil)
	mover := newSnake(1, core.DirRight, core.Pos(2, 2), core.Pos(1, 2), core.Pos(0, 2))
	other := newSnake(2, core.DirUp, core.Pos(3, 1), core.Pos(3, 2), core.Pos(3, 3))
	state := newTestState(10, 10, config.ModeMulti, mover, other)
	state.TimeRemaining = 100

	res := Tick(state, ctx)

	if mover.Alive {
		t.Fatal("mover should have died")
	}
	if mover.DeathReason != ReasonSnake {
		t.Errorf("death reason = %q, expected %q", mover.DeathReason, ReasonSnake)
	}
	if !other.Alive {
		t.Error("other snake should be unaffected")
	}
	if other.Head() != core.Pos(3, 0) {
		t.Errorf("other head = %v, expected (3,0)", other.Head())
	}

	deaths := res.Deaths()
	if len(deaths) != 1 || deaths[0].SnakeID != 1 {
		t.Errorf("unexpected deaths: %+v", deaths)
	}
	done, ok := res.Completed()
	if !ok || !done.HasWinner || done.WinnerID != 2 {
		t.Errorf("expected snake 2 to win the level, got %+v", done)
	}
	if other.LevelsWon != 1 {
		t.Errorf("winner levelsWon = %d, expected 1", other.LevelsWon)
	}
}

func TestWallAndBoundsDeath(t *testing.T) {
	ctx := testContext(testSettings(), nil)

	edge := newSnake(1, core.DirLeft, core.Pos(0, 3), core.Pos(1, 3), core.Pos(2, 3))
	state := newTestState(10, 10, config.ModeSingle, edge)
	Tick(state, ctx)
	if edge.Alive || edge.DeathReason != ReasonWall {
		t.Errorf("leaving the board should count as a wall, got alive=%v reason=%q", edge.Alive, edge.DeathReason)
	}

	walled := newSnake(1, core.DirRight, core.Pos(4, 4), core.Pos(3, 4), core.Pos(2, 4))
	state = newTestState(10, 10, config.ModeSingle, walled)
	state.SetWalls([]core.Position{core.Pos(5, 4)})
	Tick(state, ctx)
	if walled.Alive || walled.DeathReason != ReasonWall {
		t.Errorf("expected wall death, got alive=%v reason=%q", walled.Alive, walled.DeathReason)
	}
}

func TestSelfCollisionDeath(t *testing.T) {
	ctx := testContext(testSettings(), nil)
	// Head at (2,2) heading down into its own body at (2,3)
	sn := newSnake(1, core.DirDown,
		core.Pos(2, 2), core.Pos(3, 2), core.Pos(3, 3), core.Pos(2, 3), core.Pos(1, 3))
	state := newTestState(10, 10, config.ModeSingle, sn)

	Tick(state, ctx)

	if sn.Alive || sn.DeathReason != ReasonSelf {
		t.Errorf("expected self collision, got alive=%v reason=%q", sn.Alive, sn.DeathReason)
	}
}

func TestFollowingOwnTailIsLegal(t *testing.T) {
	ctx := testContext(testSettings(), nil)
	// A 2x2 loop: the head moves into the cell the tail vacates
	sn := newSnake(1, core.DirDown,
		core.Pos(2, 2), core.Pos(3, 2), core.Pos(3, 3), core.Pos(2, 3))
	state := newTestState(10, 10, config.ModeSingle, sn)

	Tick(state, ctx)

	if !sn.Alive {
		t.Fatalf("moving into the vacated tail should be legal, died: %q", sn.DeathReason)
	}
}

func TestEatingAtHungerThresholdKeepsTail(t *testing.T) {
	s := testSettings()
	s.HungerThreshold = 3
	ctx := testContext(s, nil)
	sn := newSnake(1, core.DirRight, core.Pos(5, 5), core.Pos(4, 5), core.Pos(3, 5))
	state := newTestState(20, 20, config.ModeSingle, sn)
	state.Food = []Food{NewFood(FoodApple, core.Pos(6, 5))}
	sn.TicksWithoutFood = s.HungerThreshold

	Tick(state, ctx)

	if sn.TicksWithoutFood != 0 {
		t.Errorf("ticksWithoutFood = %d, expected 0 after eating", sn.TicksWithoutFood)
	}
	if sn.Len() != 4 {
		t.Errorf("length = %d, expected growth to 4 without a hunger trim", sn.Len())
	}

	Tick(state, ctx)
	if sn.TicksWithoutFood != 1 {
		t.Errorf("ticksWithoutFood = %d, expected 1 on the next tick", sn.TicksWithoutFood)
	}
}

func TestHungerThreshold(t *testing.T) {
	s := testSettings()
	s.HungerThreshold = 5
	s.MinSnakeLength = 2
	ctx := testContext(s, nil)

	sn := newSnake(1, core.DirRight, core.Pos(3, 5), core.Pos(2, 5), core.Pos(1, 5))
	state := newTestState(30, 10, config.ModeSingle, sn)

	sn.TicksWithoutFood = s.HungerThreshold - 1
	Tick(state, ctx)
	if sn.Len() != 3 {
		t.Errorf("length = %d, expected no trim one tick before the threshold", sn.Len())
	}
	if sn.TicksWithoutFood != s.HungerThreshold {
		t.Errorf("ticksWithoutFood = %d, expected %d", sn.TicksWithoutFood, s.HungerThreshold)
	}

	Tick(state, ctx)
	if sn.Len() != 2 {
		t.Errorf("length = %d, expected exactly one segment trimmed", sn.Len())
	}
	if sn.TicksWithoutFood != 0 {
		t.Errorf("ticksWithoutFood = %d, expected reset to 0", sn.TicksWithoutFood)
	}
	if !sn.Alive {
		t.Error("snake at the minimum length should survive")
	}
}

func TestStarvation(t *testing.T) {
	s := testSettings()
	s.HungerThreshold = 3
	s.MinSnakeLength = 2
	ctx := testContext(s, nil)

	sn := newSnake(1, core.DirRight, core.Pos(3, 5), core.Pos(2, 5))
	sn.TicksWithoutFood = s.HungerThreshold
	state := newTestState(30, 10, config.ModeSingle, sn)

	res := Tick(state, ctx)

	if sn.Alive {
		t.Fatal("snake trimmed below the minimum should starve")
	}
	if sn.DeathReason != ReasonStarved {
		t.Errorf("death reason = %q, expected %q", sn.DeathReason, ReasonStarved)
	}
	// Single mode: death ends the game with paired events
	var sawComplete, sawGameOver bool
	for _, e := range res.Events {
		switch e.(type) {
		case LevelCompleted:
			sawComplete = true
		case GameOver:
			if !sawComplete {
				t.Error("GameOver must follow LevelCompleted")
			}
			sawGameOver = true
		}
	}
	if !sawComplete || !sawGameOver || !state.GameOver || !state.LevelComplete {
		t.Errorf("expected paired completion and game over, got events %+v", res.Events)
	}
}

func TestSingleModeTargetReached(t *testing.T) {
	s := testSettings()
	ctx := testContext(s, nil)
	sn := newSnake(1, core.DirRight, core.Pos(3, 5), core.Pos(2, 5), core.Pos(1, 5))
	sn.Score = s.CumulativeTarget(1)
	state := newTestState(20, 10, config.ModeSingle, sn)

	res := Tick(state, ctx)

	if !state.LevelComplete {
		t.Fatal("level should be complete")
	}
	if state.GameOver {
		t.Error("reaching the target is not game over")
	}
	done, ok := res.Completed()
	if !ok {
		t.Fatal("expected LevelCompleted event")
	}
	if done.Reason != CompleteTarget || done.WinnerID != 1 {
		t.Errorf("unexpected completion: %+v", done)
	}
}

func TestMultiModeTimer(t *testing.T) {
	ctx := testContext(testSettings(), nil)
	a := newSnake(1, core.DirRight, core.Pos(2, 2), core.Pos(1, 2))
	b := newSnake(2, core.DirRight, core.Pos(2, 6), core.Pos(1, 6))
	state := newTestState(20, 10, config.ModeMulti, a, b)
	state.TimeRemaining = 2

	Tick(state, ctx)
	if state.LevelComplete {
		t.Fatal("level ended before the timer ran out")
	}
	res := Tick(state, ctx)
	done, ok := res.Completed()
	if !ok || done.Reason != CompleteTimeUp || done.HasWinner {
		t.Errorf("expected time-up without winner, got %+v (ok=%v)", done, ok)
	}
}

func TestTerminalStateIsNoop(t *testing.T) {
	ctx := testContext(testSettings(), nil)
	sn := newSnake(1, core.DirRight, core.Pos(3, 5), core.Pos(2, 5))
	state := newTestState(20, 10, config.ModeSingle, sn)
	state.LevelComplete = true

	before := state.Fingerprint()
	res := Tick(state, ctx)

	if len(res.Events) != 0 {
		t.Errorf("expected no events, got %d", len(res.Events))
	}
	if state.Fingerprint() != before {
		t.Error("terminal tick mutated the state")
	}
}

func TestBoardPaintOrder(t *testing.T) {
	alive := newSnake(1, core.DirRight, core.Pos(2, 2), core.Pos(1, 2))
	dead := newSnake(2, core.DirRight, core.Pos(5, 5), core.Pos(4, 5))
	dead.Alive = false
	state := newTestState(10, 10, config.ModeMulti, alive, dead)
	state.SetWalls([]core.Position{core.Pos(0, 0)})
	// Food sharing a cell with a body: the snake wins
	state.Food = []Food{NewFood(FoodApple, core.Pos(1, 2)), NewFood(FoodRabbit, core.Pos(7, 7))}

	b := BuildBoard(state)

	tests := []struct {
		p        core.Position
		expected core.Cell
	}{
		{core.Pos(0, 0), core.CellWall},
		{core.Pos(2, 2), core.CellSnakeHead},
		{core.Pos(1, 2), core.CellSnakeBody},
		{core.Pos(5, 5), core.CellDeadSnake},
		{core.Pos(7, 7), core.CellRabbit},
		{core.Pos(9, 9), core.CellEmpty},
	}
	for _, tc := range tests {
		if got := b.Get(tc.p); got != tc.expected {
			t.Errorf("cell %v = %v, expected %v", tc.p, got, tc.expected)
		}
	}
	if b.Owner(core.Pos(2, 2)) != 1 {
		t.Errorf("owner of head = %d, expected 1", b.Owner(core.Pos(2, 2)))
	}
}
