package progress

import (
	"context"

	"go.uber.org/zap"
)

// Point values the task backend assigns to its two task kinds.
const (
	DailyTaskPoints  = 5
	WeeklyTaskPoints = 25
)

// CompleteTask records one completed task worth points: it bumps the task
// counter, awards experience, advances the streak and persists once.
func (e *Engine) CompleteTask(ctx context.Context, points int) (*CompleteResult, error) {
	if points <= 0 {
		return nil, PointsError{Points: points}
	}

	e.mu.Lock()
	now := e.now()
	var m mutation

	e.snap.TasksCompleted++
	exp := e.addExperienceLocked(points, &m)
	streak := e.updateStreakLocked(now, &m)

	m.signals = append(m.signals, signal{kind: signalTaskComplete})
	if id, ok := taskCountBadges[e.snap.TasksCompleted]; ok {
		e.addBadgeLocked(id, &m)
	}

	e.persistLocked(ctx)
	if e.journal != nil {
		if err := e.journal.RecordCompletion(ctx, points, now); err != nil {
			e.log.Warn("record completion", zap.Error(err))
		}
	}

	res := &CompleteResult{
		TasksCompleted: e.snap.TasksCompleted,
		Experience:     exp,
		Streak:         streak,
		NewBadges:      m.badgesSince(0),
	}
	e.mu.Unlock()

	e.emit(ctx, m.signals)
	return res, nil
}

// AddExperience adds points on top of the current total. It is additive:
// two calls award twice.
func (e *Engine) AddExperience(ctx context.Context, points int) (*ExperienceResult, error) {
	if points <= 0 {
		return nil, PointsError{Points: points}
	}

	e.mu.Lock()
	var m mutation
	res := e.addExperienceLocked(points, &m)
	e.persistLocked(ctx)
	e.mu.Unlock()

	e.emit(ctx, m.signals)
	return &res, nil
}

func (e *Engine) addExperienceLocked(points int, m *mutation) ExperienceResult {
	mark := len(m.newBadges)
	before := e.snap
	newPoints := before.TotalPoints + points
	newLevel := advanceLevel(before.CurrentLevel, newPoints)

	e.snap.TotalPoints = newPoints
	e.snap.CurrentLevel = newLevel

	levelUp := newLevel > before.CurrentLevel
	if levelUp {
		m.signals = append(m.signals, signal{kind: signalLevelUp, level: newLevel})
		if id, ok := levelBadges[newLevel]; ok {
			e.addBadgeLocked(id, m)
		}
		e.log.Debug("level up", zap.Int("from", before.CurrentLevel), zap.Int("to", newLevel))
	}
	if newPoints >= PointsMasterThreshold {
		e.addBadgeLocked(BadgePointsMaster, m)
	}

	return ExperienceResult{
		PointsAwarded: points,
		PointsBefore:  before.TotalPoints,
		PointsAfter:   newPoints,
		LevelBefore:   before.CurrentLevel,
		LevelAfter:    newLevel,
		LevelUp:       levelUp,
		NewBadges:     m.badgesSince(mark),
	}
}

// AddBadge awards a badge once. It returns false if the badge was already held.
func (e *Engine) AddBadge(ctx context.Context, id BadgeID) bool {
	e.mu.Lock()
	var m mutation
	added := e.addBadgeLocked(id, &m)
	if added {
		e.persistLocked(ctx)
	}
	e.mu.Unlock()

	e.emit(ctx, m.signals)
	return added
}

func (e *Engine) addBadgeLocked(id BadgeID, m *mutation) bool {
	if id == "" || e.snap.HasBadge(id) {
		return false
	}
	e.snap.Badges = append(e.snap.Badges, id)
	m.newBadges = append(m.newBadges, id)
	m.signals = append(m.signals, signal{kind: signalAchievement, badge: id})
	e.log.Debug("badge unlocked", zap.String("badge", string(id)))
	return true
}
