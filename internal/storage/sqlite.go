// Package storage provides SQLite-based persistence for scores and arena runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/snake-arena/internal/arena"
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single interactive game result.
type ScoreEntry struct {
	ID        int64
	Player    string
	Mode      string
	Level     int
	Score     int
	CreatedAt time.Time
}

// RunRecord is a persisted arena run.
type RunRecord struct {
	ID         string
	BatchID    string
	Seed       int64
	Mode       string
	Ticks      int
	Levels     int
	WinnerID   int
	DurationMS int64
	CreatedAt  time.Time
}

// AgentRecord is one participant of a persisted arena run.
type AgentRecord struct {
	RunID         string
	SnakeID       int
	Name          string
	Algorithm     string
	Score         int
	LevelsWon     int
	TicksSurvived int
	Deaths        int
	DeathReason   string
	Alive         bool
	Rank          int
}

// AlgorithmSummary aggregates every stored agent of one algorithm.
type AlgorithmSummary struct {
	Algorithm string
	Agents    int
	AvgScore  float64
	AvgTicks  float64
	BestScore int
	Wins      int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Foreign keys are off by default in SQLite; the DSN pragma applies to every pooled connection
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			mode TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode, score DESC);

		CREATE TABLE IF NOT EXISTS arena_runs (
			id TEXT PRIMARY KEY,
			batch_id TEXT,
			seed INTEGER NOT NULL,
			mode TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			levels INTEGER NOT NULL,
			winner_id INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_arena_runs_batch ON arena_runs(batch_id);

		CREATE TABLE IF NOT EXISTS arena_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES arena_runs(id) ON DELETE CASCADE,
			snake_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			score INTEGER NOT NULL,
			levels_won INTEGER NOT NULL,
			ticks_survived INTEGER NOT NULL,
			deaths INTEGER NOT NULL,
			death_reason TEXT,
			alive INTEGER NOT NULL,
			rank INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_arena_results_run ON arena_results(run_id);
		CREATE INDEX IF NOT EXISTS idx_arena_results_algorithm ON arena_results(algorithm);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records the final score of an interactive game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(player, mode string, level, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (player, mode, level, score) VALUES (?, ?, ?, ?)",
		player, mode, level, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given mode.
// Results are ordered by score descending.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, mode, level, score, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Mode, &e.Level, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no scores exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given mode.
func (s *Store) ClearScores(mode string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveRun implements arena.ResultSaver. The run and its agents are written
// in one transaction.
func (s *Store) SaveRun(ctx context.Context, r arena.RunResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO arena_runs (id, batch_id, seed, mode, ticks, levels, winner_id, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.BatchID, r.Seed, r.Mode, r.Ticks, r.Levels, r.WinnerID, r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}

	for _, a := range r.Agents {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO arena_results
			 (run_id, snake_id, name, algorithm, score, levels_won, ticks_survived, deaths, death_reason, alive, rank)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, a.SnakeID, a.Name, a.Algorithm, a.Score, a.LevelsWon,
			a.TicksSurvived, a.Deaths, a.DeathReason, a.Alive, a.Rank,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save result for snake %d: %w", a.SnakeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return nil
}

// Ensure Store implements ResultSaver
var _ arena.ResultSaver = (*Store)(nil)

// RecentRuns retrieves the most recent arena runs.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, COALESCE(batch_id, ''), seed, mode, ticks, levels, winner_id, duration_ms, created_at
		 FROM arena_runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.BatchID,
			&r.Seed,
			&r.Mode,
			&r.Ticks,
			&r.Levels,
			&r.WinnerID,
			&r.DurationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its id. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*RunRecord, error) {
	var r RunRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, COALESCE(batch_id, ''), seed, mode, ticks, levels, winner_id, duration_ms, created_at
		 FROM arena_runs
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.BatchID, &r.Seed, &r.Mode, &r.Ticks, &r.Levels, &r.WinnerID, &r.DurationMS, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// DeleteRun removes a run; its per-agent results go with it.
// Reports whether the run existed.
func (s *Store) DeleteRun(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM arena_runs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete run: %w", err)
	}
	return n > 0, nil
}

// RunAgents retrieves the participants of a run ordered by rank.
func (s *Store) RunAgents(runID string) ([]AgentRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, snake_id, name, algorithm, score, levels_won, ticks_survived,
		        deaths, COALESCE(death_reason, ''), alive, rank
		 FROM arena_results
		 WHERE run_id = ?
		 ORDER BY rank ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run agents: %w", err)
	}
	defer rows.Close()

	var agents []AgentRecord
	for rows.Next() {
		var a AgentRecord
		if err := rows.Scan(
			&a.RunID,
			&a.SnakeID,
			&a.Name,
			&a.Algorithm,
			&a.Score,
			&a.LevelsWon,
			&a.TicksSurvived,
			&a.Deaths,
			&a.DeathReason,
			&a.Alive,
			&a.Rank,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		agents = append(agents, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return agents, nil
}

// AlgorithmSummaries aggregates every stored agent by algorithm, best
// average score first.
func (s *Store) AlgorithmSummaries() ([]AlgorithmSummary, error) {
	rows, err := s.db.Query(
		`SELECT r.algorithm,
		        COUNT(*),
		        AVG(r.score),
		        AVG(r.ticks_survived),
		        MAX(r.score),
		        SUM(CASE WHEN ru.winner_id = r.snake_id THEN 1 ELSE 0 END)
		 FROM arena_results r
		 JOIN arena_runs ru ON ru.id = r.run_id
		 GROUP BY r.algorithm
		 ORDER BY AVG(r.score) DESC, r.algorithm ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query algorithm stats: %w", err)
	}
	defer rows.Close()

	var out []AlgorithmSummary
	for rows.Next() {
		var a AlgorithmSummary
		if err := rows.Scan(&a.Algorithm, &a.Agents, &a.AvgScore, &a.AvgTicks, &a.BestScore, &a.Wins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// parseTime handles both driver-decoded times and raw SQLite strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
