package progress

import "math"

const (
	// MaxLevel is the highest reachable level.
	MaxLevel = 50

	// LevelUpBase is the point cost of leaving level 1.
	LevelUpBase = 100.0

	// LevelUpGrowth multiplies the cost of each following level.
	LevelUpGrowth = 1.5
)

// levelThresholds[i] is the cumulative point total needed to reach level i+1.
var levelThresholds = buildLevelThresholds(MaxLevel)

// PointsToLeaveLevel returns the points needed to go from level to level+1:
// floor(100 * 1.5^(level-1)).
func PointsToLeaveLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(LevelUpBase * math.Pow(LevelUpGrowth, float64(level-1))))
}

func buildLevelThresholds(maxLevel int) []int {
	t := make([]int, maxLevel+1)
	for i := 1; i <= maxLevel; i++ {
		t[i] = t[i-1] + PointsToLeaveLevel(i)
	}
	return t
}

// LevelThresholds returns a copy of the cumulative threshold table.
// Index 0 is level 1 (threshold 0).
func LevelThresholds() []int {
	out := make([]int, len(levelThresholds))
	copy(out, levelThresholds)
	return out
}

// ThresholdForLevel returns the total points required to be at the given level.
// Level 1 and below require 0 points.
func ThresholdForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	idx := level - 1
	if idx >= len(levelThresholds) {
		idx = len(levelThresholds) - 1
	}
	return levelThresholds[idx]
}

// LevelForPoints returns the highest level whose threshold totalPoints reaches.
func LevelForPoints(totalPoints int) int {
	return advanceLevel(1, totalPoints)
}

// advanceLevel scans forward from the current level; it never moves down.
func advanceLevel(current, totalPoints int) int {
	lvl := current
	if lvl < 1 {
		lvl = 1
	}
	for lvl < MaxLevel && totalPoints >= levelThresholds[lvl] {
		lvl++
	}
	return lvl
}

// PointsToNextLevel returns how many points are still missing for the next level,
// or 0 at the max level.
func (s Snapshot) PointsToNextLevel() int {
	if s.CurrentLevel >= MaxLevel {
		return 0
	}
	lvl := s.CurrentLevel
	if lvl < 1 {
		lvl = 1
	}
	missing := levelThresholds[lvl] - s.TotalPoints
	if missing < 0 {
		return 0
	}
	return missing
}

// ProgressPercent is the floored percentage of the way through the current level.
func (s Snapshot) ProgressPercent() int {
	if s.CurrentLevel >= MaxLevel {
		return 100
	}
	lvl := s.CurrentLevel
	if lvl < 1 {
		lvl = 1
	}
	start := levelThresholds[lvl-1]
	next := levelThresholds[lvl]
	pct := int(math.Floor(float64(s.TotalPoints-start) / float64(next-start) * 100))
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// ShouldLevelUp reports whether the stored level lags behind the points total.
func (s Snapshot) ShouldLevelUp() bool {
	return s.CurrentLevel < MaxLevel && s.TotalPoints >= levelThresholds[max(s.CurrentLevel, 1)]
}
