package progress

import (
	"slices"
	"time"
)

// Snapshot is the full progress record kept in memory and persisted as one blob.
type Snapshot struct {
	TotalPoints    int
	CurrentLevel   int
	CurrentStreak  int
	LongestStreak  int
	TasksCompleted int
	Badges         []BadgeID
	LastActiveDate *time.Time
	// ActiveDays counts distinct calendar days with at least one streak update.
	ActiveDays int
}

// DefaultSnapshot is the state of a fresh install.
func DefaultSnapshot() Snapshot {
	return Snapshot{CurrentLevel: 1, Badges: []BadgeID{}}
}

// HasBadge reports whether the badge has been earned.
func (s Snapshot) HasBadge(id BadgeID) bool {
	return slices.Contains(s.Badges, id)
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Badges = slices.Clone(s.Badges)
	if out.Badges == nil {
		out.Badges = []BadgeID{}
	}
	if s.LastActiveDate != nil {
		t := *s.LastActiveDate
		out.LastActiveDate = &t
	}
	return out
}

// ExperienceResult describes one points award.
type ExperienceResult struct {
	PointsAwarded int
	PointsBefore  int
	PointsAfter   int
	LevelBefore   int
	LevelAfter    int
	LevelUp       bool
	NewBadges     []BadgeID
}

// StreakTransition names the branch taken by a streak update.
type StreakTransition string

const (
	StreakStarted   StreakTransition = "started"
	StreakSameDay   StreakTransition = "same_day"
	StreakContinued StreakTransition = "continued"
	StreakReset     StreakTransition = "reset"
)

type StreakResult struct {
	Transition    StreakTransition
	StreakBefore  int
	StreakAfter   int
	LongestStreak int
	NewBadges     []BadgeID
}

type CompleteResult struct {
	TasksCompleted int
	Experience     ExperienceResult
	Streak         StreakResult
	// NewBadges holds every badge earned by this completion, in award order.
	NewBadges []BadgeID
}
