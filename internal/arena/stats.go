package arena

import (
	"sort"
	"time"

	"github.com/vovakirdan/snake-arena/internal/engine"
)

// AgentStats summarises one participant of one run.
type AgentStats struct {
	SnakeID       int
	Name          string
	Algorithm     string
	Score         int
	LevelsWon     int
	TicksSurvived int
	Deaths        int
	DeathCauses   map[string]int // every death of the run by reason
	DeathReason   string         // death in the final level, empty if it survived it
	Alive         bool
	Rank          int // 1-based position in the final standings
}

// RunResult is the outcome of one seeded run.
type RunResult struct {
	ID           string
	BatchID      string
	Seed         int64
	Mode         string
	Ticks        int // total ticks across all levels
	Levels       int // last level played
	WinnerID     int // engine.NoSnake when no single winner
	Agents       []AgentStats
	Fingerprints []uint64 // per-tick state hashes when tracing
	Duration     time.Duration
	FinishedAt   time.Time
}

// Winner returns the stats of the run winner.
func (r RunResult) Winner() (AgentStats, bool) {
	for _, a := range r.Agents {
		if a.SnakeID == r.WinnerID && r.WinnerID != engine.NoSnake {
			return a, true
		}
	}
	return AgentStats{}, false
}

// AlgorithmStats aggregates every agent driven by one algorithm.
type AlgorithmStats struct {
	Algorithm string
	Agents    int // agent entries across runs
	AvgScore  float64
	AvgTicks  float64
	AvgRank   float64
	Wins      int // runs won outright
	LevelsWon int
	Deaths    map[string]int // death reason histogram
}

// BatchResult holds every run in seed order plus the per-algorithm summary.
type BatchResult struct {
	ID         string
	Runs       []RunResult
	Algorithms []AlgorithmStats
	Duration   time.Duration
}

// Aggregate folds run results into per-algorithm statistics, sorted by
// average score descending, then name.
func Aggregate(runs []RunResult) []AlgorithmStats {
	type acc struct {
		stats   AlgorithmStats
		score   float64
		ticks   float64
		rankSum float64
	}
	byName := make(map[string]*acc)

	for _, r := range runs {
		for _, a := range r.Agents {
			cur, ok := byName[a.Algorithm]
			if !ok {
				cur = &acc{stats: AlgorithmStats{Algorithm: a.Algorithm, Deaths: make(map[string]int)}}
				byName[a.Algorithm] = cur
			}
			cur.stats.Agents++
			cur.stats.LevelsWon += a.LevelsWon
			cur.score += float64(a.Score)
			cur.ticks += float64(a.TicksSurvived)
			cur.rankSum += float64(a.Rank)
			if a.SnakeID == r.WinnerID && r.WinnerID != engine.NoSnake {
				cur.stats.Wins++
			}
			for reason, n := range a.DeathCauses {
				cur.stats.Deaths[reason] += n
			}
		}
	}

	out := make([]AlgorithmStats, 0, len(byName))
	for _, cur := range byName {
		n := float64(cur.stats.Agents)
		cur.stats.AvgScore = cur.score / n
		cur.stats.AvgTicks = cur.ticks / n
		cur.stats.AvgRank = cur.rankSum / n
		out = append(out, cur.stats)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgScore != out[j].AvgScore {
			return out[i].AvgScore > out[j].AvgScore
		}
		return out[i].Algorithm < out[j].Algorithm
	})
	return out
}
