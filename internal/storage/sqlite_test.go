package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/snake-arena/internal/arena"
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/engine"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, sc := range []int{100, 50, 200} {
		if _, err := store.SaveScore("alice", "single", 2, sc); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("bob", "multi", 1, 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("single", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	expected := []int{200, 100, 50}
	for i, e := range scores {
		if e.Score != expected[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, expected[i])
		}
		if e.Player != "alice" || e.Mode != "single" || e.Level != 2 {
			t.Errorf("unexpected entry %+v", e)
		}
		if e.CreatedAt.IsZero() {
			t.Error("CreatedAt was not parsed")
		}
	}

	limited, err := store.TopScores("single", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("single")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty mode, got %d", high)
	}

	store.SaveScore("alice", "single", 1, 30)
	store.SaveScore("alice", "single", 3, 90)

	high, err = store.HighScore("single")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 90 {
		t.Errorf("Expected 90, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("alice", "single", 1, 10)
	store.SaveScore("bob", "multi", 1, 20)

	if err := store.ClearScores("single"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	single, _ := store.TopScores("single", 10)
	multi, _ := store.TopScores("multi", 10)
	if len(single) != 0 {
		t.Errorf("Expected single scores cleared, got %d", len(single))
	}
	if len(multi) != 1 {
		t.Errorf("Expected multi scores kept, got %d", len(multi))
	}
}

func sampleRun(id string, winner int) arena.RunResult {
	return arena.RunResult{
		ID:       id,
		BatchID:  "batch-1",
		Seed:     42,
		Mode:     string(config.ModeMulti),
		Ticks:    350,
		Levels:   2,
		WinnerID: winner,
		Duration: 15 * time.Millisecond,
		Agents: []arena.AgentStats{
			{SnakeID: 1, Name: "Bot 1", Algorithm: registry.Heuristic, Score: 14, LevelsWon: 2,
				TicksSurvived: 350, Alive: true, Rank: 1},
			{SnakeID: 2, Name: "Bot 2", Algorithm: registry.Greedy, Score: 6, TicksSurvived: 120,
				Deaths: 2, DeathReason: engine.ReasonSnake, Rank: 2},
		},
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveRun(ctx, sampleRun("run-1", 1)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID("run-1")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("run not found")
	}
	if run.Seed != 42 || run.Ticks != 350 || run.Levels != 2 || run.WinnerID != 1 || run.DurationMS != 15 {
		t.Errorf("unexpected run %+v", run)
	}
	if run.BatchID != "batch-1" || run.Mode != "multi" {
		t.Errorf("unexpected identity %+v", run)
	}

	agents, err := store.RunAgents("run-1")
	if err != nil {
		t.Fatalf("RunAgents() failed: %v", err)
	}
	if len(agents) != 2 {
		t.Fatalf("Expected 2 agents, got %d", len(agents))
	}
	if !agents[0].Alive || agents[0].Algorithm != registry.Heuristic || agents[0].Rank != 1 {
		t.Errorf("unexpected first agent %+v", agents[0])
	}
	if agents[1].Alive || agents[1].DeathReason != engine.ReasonSnake || agents[1].Deaths != 2 {
		t.Errorf("unexpected second agent %+v", agents[1])
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreDeleteRunCascades(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveRun(ctx, sampleRun("run-1", 1)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.SaveRun(ctx, sampleRun("run-2", 2)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	deleted, err := store.DeleteRun("run-1")
	if err != nil || !deleted {
		t.Fatalf("DeleteRun() = %v, %v; expected true, nil", deleted, err)
	}

	agents, err := store.RunAgents("run-1")
	if err != nil {
		t.Fatalf("RunAgents() failed: %v", err)
	}
	if len(agents) != 0 {
		t.Errorf("Expected results of deleted run to be removed, got %d", len(agents))
	}

	kept, err := store.RunAgents("run-2")
	if err != nil || len(kept) != 2 {
		t.Errorf("RunAgents(run-2) = %d agents, %v; expected 2", len(kept), err)
	}

	deleted, err = store.DeleteRun("run-1")
	if err != nil || deleted {
		t.Errorf("DeleteRun(again) = %v, %v; expected false, nil", deleted, err)
	}
}

func TestStoreSaveRunDuplicate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveRun(ctx, sampleRun("run-1", 1)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.SaveRun(ctx, sampleRun("run-1", 1)); err == nil {
		t.Error("expected error for duplicate run id")
	}

	agents, _ := store.RunAgents("run-1")
	if len(agents) != 2 {
		t.Errorf("failed save leaked %d agent rows", len(agents)-2)
	}
}

func TestStoreRecentRunsAndSummaries(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.SaveRun(ctx, sampleRun("run-1", 1))
	store.SaveRun(ctx, sampleRun("run-2", 2))
	store.SaveRun(ctx, sampleRun("run-3", engine.NoSnake))

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "run-3" {
		t.Errorf("Expected newest run first, got %s", runs[0].ID)
	}

	summaries, err := store.AlgorithmSummaries()
	if err != nil {
		t.Fatalf("AlgorithmSummaries() failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("Expected 2 algorithms, got %d", len(summaries))
	}
	h, g := summaries[0], summaries[1]
	if h.Algorithm != registry.Heuristic || g.Algorithm != registry.Greedy {
		t.Fatalf("unexpected order %s, %s", h.Algorithm, g.Algorithm)
	}
	if h.Agents != 3 || h.AvgScore != 14 || h.BestScore != 14 || h.Wins != 1 {
		t.Errorf("unexpected heuristic summary %+v", h)
	}
	if g.Wins != 1 || g.AvgTicks != 120 {
		t.Errorf("unexpected greedy summary %+v", g)
	}
}

func TestStoreWithBatch(t *testing.T) {
	store := openTestStore(t)

	opts := arena.Options{
		Settings: config.DefaultSettings(),
		Game:     config.GameConfig{Bots: 2, Algorithms: []string{registry.Heuristic, registry.Random}},
		MaxTicks: 100,
		Runs:     3,
		Workers:  2,
		BaseSeed: 9,
		Saver:    store,
	}
	batch, err := arena.RunBatch(context.Background(), opts)
	if err != nil {
		t.Fatalf("RunBatch() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != len(batch.Runs) {
		t.Errorf("stored %d runs, expected %d", len(runs), len(batch.Runs))
	}
	for _, r := range runs {
		if r.BatchID != batch.ID {
			t.Errorf("run %s has batch %q, expected %q", r.ID, r.BatchID, batch.ID)
		}
	}
}
