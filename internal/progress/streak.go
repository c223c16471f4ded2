package progress

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// UpdateStreak applies today's activity to the streak without awarding points.
// A second call on the same local calendar day changes nothing.
func (e *Engine) UpdateStreak(ctx context.Context) StreakResult {
	e.mu.Lock()
	var m mutation
	res := e.updateStreakLocked(e.now(), &m)
	if res.Transition != StreakSameDay {
		e.persistLocked(ctx)
	}
	e.mu.Unlock()

	e.emit(ctx, m.signals)
	return res
}

func (e *Engine) updateStreakLocked(now time.Time, m *mutation) StreakResult {
	mark := len(m.newBadges)
	res := StreakResult{
		StreakBefore:  e.snap.CurrentStreak,
		StreakAfter:   e.snap.CurrentStreak,
		LongestStreak: e.snap.LongestStreak,
	}

	if e.snap.LastActiveDate == nil {
		res.Transition = StreakStarted
		e.snap.CurrentStreak = 1
	} else {
		switch days := e.calendarDaysBetween(*e.snap.LastActiveDate, now); {
		case days <= 0:
			// Same day, or a clock that moved backwards.
			res.Transition = StreakSameDay
			return res
		case days == 1:
			res.Transition = StreakContinued
			e.snap.CurrentStreak++
		default:
			res.Transition = StreakReset
			e.snap.CurrentStreak = 1
		}
	}

	e.snap.LongestStreak = max(e.snap.LongestStreak, e.snap.CurrentStreak)
	at := now
	e.snap.LastActiveDate = &at
	e.snap.ActiveDays++

	if id, ok := streakBadges[e.snap.CurrentStreak]; ok {
		e.addBadgeLocked(id, m)
	}
	if e.snap.ActiveDays == DedicationDays {
		e.addBadgeLocked(BadgeDedicationAward, m)
	}

	res.StreakAfter = e.snap.CurrentStreak
	res.LongestStreak = e.snap.LongestStreak
	res.NewBadges = m.badgesSince(mark)
	e.log.Debug("streak updated",
		zap.String("transition", string(res.Transition)),
		zap.Int("streak", res.StreakAfter),
	)
	return res
}

// BreakStreak zeroes the current streak. It is used when staleness is detected
// before any new activity; LongestStreak and LastActiveDate are kept.
func (e *Engine) BreakStreak(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.breakStreakLocked(ctx)
}

func (e *Engine) breakStreakLocked(ctx context.Context) {
	e.snap.CurrentStreak = 0
	e.persistLocked(ctx)
}

// calendarDaysBetween counts local midnights crossed going from a to b.
func (e *Engine) calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.In(e.loc).Date()
	by, bm, bd := b.In(e.loc).Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
