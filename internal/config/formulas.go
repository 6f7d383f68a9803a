package config

import "math"

// WallCount returns the number of wall clusters for a level.
func (s Settings) WallCount(level int, d Difficulty) int {
	if o, ok := s.Levels[level]; ok && o.WallCount != nil {
		return *o.WallCount
	}
	base := float64(s.WallClusterBase + s.WallClusterPerLevel*(levelIndex(level)))
	return max(int(math.Round(base*d.Scale())), 0)
}

// WallLength returns the cell count of each wall cluster for a level.
func (s Settings) WallLength(level int) int {
	if o, ok := s.Levels[level]; ok && o.WallLength != nil {
		return *o.WallLength
	}
	n := s.WallLengthBase + s.WallLengthPerLevel*levelIndex(level)
	return max(min(n, s.WallLengthMax), 0)
}

// FoodCount returns the number of food entities spawned at level start.
func (s Settings) FoodCount(level int) int {
	if o, ok := s.Levels[level]; ok && o.FoodCount != nil {
		return *o.FoodCount
	}
	n := s.FoodBase + s.FoodPerLevel*levelIndex(level)
	return max(min(n, s.FoodMax), 0)
}

// TargetScore returns the points needed to clear a single level.
func (s Settings) TargetScore(level int) int {
	return s.TargetScoreBase + s.TargetScorePerLevel*levelIndex(level)
}

// CumulativeTarget returns the total score needed to clear levels 1..level.
// Scores carry over between levels, so completion compares against this.
func (s Settings) CumulativeTarget(level int) int {
	total := 0
	for l := 1; l <= level; l++ {
		total += s.TargetScore(l)
	}
	return total
}

// SafetyRadius returns the Chebyshev radius kept wall-free around spawn cells.
func (s Settings) SafetyRadius() int {
	return int(math.Ceil(s.WallSafetyFactor * float64(s.InitialSnakeLength)))
}

// RabbitCount splits a food total into rabbits; the rest are apples.
func (s Settings) RabbitCount(total int) int {
	return int(math.Round(float64(total) * s.RabbitShare))
}

func levelIndex(level int) int {
	return max(level-1, 0)
}
