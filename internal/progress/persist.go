package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// timestampLayout matches JavaScript's Date.toISOString, which is what
// existing installs have stored.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// maxStoredInt is the largest integer a JavaScript number holds exactly.
// Anything beyond it was not written by a real install.
const maxStoredInt = 1<<53 - 1

type wireSnapshot struct {
	TotalPoints    int       `json:"totalPoints"`
	CurrentLevel   int       `json:"currentLevel"`
	CurrentStreak  int       `json:"currentStreak"`
	LongestStreak  int       `json:"longestStreak"`
	TasksCompleted int       `json:"tasksCompleted"`
	Badges         []BadgeID `json:"badges"`
	LastActiveDate *string   `json:"lastActiveDate"`
	ActiveDays     int       `json:"activeDays"`
}

// EncodeSnapshot renders the whole snapshot as the persisted JSON object.
func EncodeSnapshot(s Snapshot) (string, error) {
	w := wireSnapshot{
		TotalPoints:    s.TotalPoints,
		CurrentLevel:   s.CurrentLevel,
		CurrentStreak:  s.CurrentStreak,
		LongestStreak:  s.LongestStreak,
		TasksCompleted: s.TasksCompleted,
		Badges:         s.Badges,
		ActiveDays:     s.ActiveDays,
	}
	if w.Badges == nil {
		w.Badges = []BadgeID{}
	}
	if s.LastActiveDate != nil {
		ts := s.LastActiveDate.UTC().Format(timestampLayout)
		w.LastActiveDate = &ts
	}
	data, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return string(data), nil
}

// DecodeSnapshot hydrates a snapshot field by field. A missing or malformed
// field keeps its default and is named in the returned list. The error is
// non-nil only when raw is not a JSON object at all.
func DecodeSnapshot(raw string) (Snapshot, []string, error) {
	s := DefaultSnapshot()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return s, nil, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	if fields == nil {
		return s, nil, fmt.Errorf("%w: snapshot is null", ErrDeserialization)
	}

	var invalid []string
	intField := func(name string, dst *int, floor int) {
		msg, ok := fields[name]
		if !ok || isNull(msg) {
			return
		}
		var f float64
		if err := json.Unmarshal(msg, &f); err != nil || f != math.Trunc(f) || math.Abs(f) > maxStoredInt {
			invalid = append(invalid, name)
			return
		}
		v := int(f)
		if v < floor {
			v = floor
		}
		*dst = v
	}

	intField("totalPoints", &s.TotalPoints, 0)
	intField("currentLevel", &s.CurrentLevel, 1)
	intField("currentStreak", &s.CurrentStreak, 0)
	intField("longestStreak", &s.LongestStreak, 0)
	intField("tasksCompleted", &s.TasksCompleted, 0)
	intField("activeDays", &s.ActiveDays, 0)
	if s.CurrentLevel > MaxLevel {
		s.CurrentLevel = MaxLevel
	}

	if msg, ok := fields["badges"]; ok && !isNull(msg) {
		var ids []BadgeID
		if err := json.Unmarshal(msg, &ids); err != nil {
			invalid = append(invalid, "badges")
		} else {
			for _, id := range ids {
				if id != "" && !s.HasBadge(id) {
					s.Badges = append(s.Badges, id)
				}
			}
		}
	}

	if msg, ok := fields["lastActiveDate"]; ok && !isNull(msg) {
		var ts string
		if err := json.Unmarshal(msg, &ts); err != nil {
			invalid = append(invalid, "lastActiveDate")
		} else if t, err := time.Parse(time.RFC3339Nano, ts); err != nil {
			invalid = append(invalid, "lastActiveDate")
		} else {
			s.LastActiveDate = &t
		}
	}

	return s, invalid, nil
}

func isNull(msg json.RawMessage) bool {
	return string(msg) == "null"
}

// persistLocked writes the whole snapshot. Failures are logged, never returned:
// the in-memory state stays authoritative until the next successful write.
func (e *Engine) persistLocked(ctx context.Context) {
	data, err := EncodeSnapshot(e.snap)
	if err != nil {
		e.log.Error("encode progress snapshot", zap.Error(err))
		return
	}
	if err := e.store.Set(ctx, e.key, data); err != nil {
		e.log.Warn("persist progress snapshot", zap.Error(storageError("set", err)))
	}
}

// Load replaces the in-memory state with the stored snapshot, or with defaults
// if nothing usable is stored. A streak left stale across two or more
// calendar days is broken afterwards.
func (e *Engine) Load(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.snap = e.readStoredLocked(ctx)

	if e.snap.CurrentStreak > 0 && e.snap.LastActiveDate != nil &&
		e.calendarDaysBetween(*e.snap.LastActiveDate, e.now()) > 1 {
		e.log.Info("streak expired while away",
			zap.Int("streak", e.snap.CurrentStreak),
			zap.Time("last_active", *e.snap.LastActiveDate),
		)
		e.breakStreakLocked(ctx)
	}
}

func (e *Engine) readStoredLocked(ctx context.Context) Snapshot {
	raw, ok, err := e.store.Get(ctx, e.key)
	if err != nil {
		e.log.Warn("load progress snapshot, using defaults", zap.Error(storageError("get", err)))
		return DefaultSnapshot()
	}
	if !ok {
		e.log.Debug("no stored progress, starting fresh")
		return DefaultSnapshot()
	}

	s, invalid, err := DecodeSnapshot(raw)
	if err != nil {
		e.log.Warn("stored progress is unreadable, using defaults", zap.Error(err))
		return DefaultSnapshot()
	}
	if len(invalid) > 0 {
		e.log.Warn("stored progress has malformed fields, defaulted",
			zap.Error(ErrDeserialization),
			zap.Strings("fields", invalid),
		)
	}
	return s
}

// Reset drops all progress in memory and removes the stored blob.
// Confirmation is the caller's job.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.snap = DefaultSnapshot()
	if err := e.store.Remove(ctx, e.key); err != nil {
		e.log.Warn("clear progress snapshot", zap.Error(storageError("remove", err)))
	}
}
