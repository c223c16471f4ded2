package progress

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSnapshotLayout(t *testing.T) {
	at := time.Date(2026, time.March, 10, 21, 4, 5, 123_000_000, time.FixedZone("CET", 3600))
	raw, err := EncodeSnapshot(Snapshot{
		TotalPoints:    110,
		CurrentLevel:   2,
		CurrentStreak:  3,
		LongestStreak:  4,
		TasksCompleted: 5,
		Badges:         []BadgeID{BadgeFirstTask},
		LastActiveDate: &at,
		ActiveDays:     6,
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, map[string]any{
		"totalPoints":    110.0,
		"currentLevel":   2.0,
		"currentStreak":  3.0,
		"longestStreak":  4.0,
		"tasksCompleted": 5.0,
		"badges":         []any{"first_task"},
		"lastActiveDate": "2026-03-10T20:04:05.123Z",
		"activeDays":     6.0,
	}, got)
}

func TestEncodeEmptySnapshot(t *testing.T) {
	raw, err := EncodeSnapshot(Snapshot{CurrentLevel: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalPoints":0,"currentLevel":1,"currentStreak":0,"longestStreak":0,
		"tasksCompleted":0,"badges":[],"lastActiveDate":null,"activeDays":0}`, raw)
}

func TestDecodeSnapshotFromMobileApp(t *testing.T) {
	// Written by the app before activeDays existed.
	raw := `{"totalPoints":480,"currentLevel":4,"currentStreak":2,"longestStreak":7,
		"tasksCompleted":31,"badges":["first_task","week_warrior"],
		"lastActiveDate":"2026-03-09T18:30:00.000Z"}`

	s, invalid, err := DecodeSnapshot(raw)
	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Equal(t, 480, s.TotalPoints)
	assert.Equal(t, 4, s.CurrentLevel)
	assert.Equal(t, 2, s.CurrentStreak)
	assert.Equal(t, 7, s.LongestStreak)
	assert.Equal(t, 31, s.TasksCompleted)
	assert.Equal(t, 0, s.ActiveDays)
	assert.Equal(t, []BadgeID{BadgeFirstTask, BadgeWeekWarrior}, s.Badges)
	require.NotNil(t, s.LastActiveDate)
	assert.True(t, s.LastActiveDate.Equal(time.Date(2026, time.March, 9, 18, 30, 0, 0, time.UTC)))
}

func TestDecodeSnapshotFieldByField(t *testing.T) {
	raw := `{"totalPoints":"lots","currentLevel":0,"currentStreak":-3,"longestStreak":2.9,
		"tasksCompleted":null,"badges":["love_guru","love_guru",""],
		"lastActiveDate":"yesterday","extra":true}`

	s, invalid, err := DecodeSnapshot(raw)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"totalPoints", "longestStreak", "lastActiveDate"}, invalid)
	assert.Equal(t, 0, s.TotalPoints)
	assert.Equal(t, 1, s.CurrentLevel)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 0, s.LongestStreak)
	assert.Equal(t, 0, s.TasksCompleted)
	assert.Equal(t, []BadgeID{BadgeLoveGuru}, s.Badges)
	assert.Nil(t, s.LastActiveDate)
}

func TestDecodeSnapshotRejectsOutOfRangeNumbers(t *testing.T) {
	s, invalid, err := DecodeSnapshot(`{"totalPoints":1e300,"tasksCompleted":-1e300,"currentStreak":12.5,"longestStreak":12.0}`)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"totalPoints", "tasksCompleted", "currentStreak"}, invalid)
	assert.Equal(t, 0, s.TotalPoints)
	assert.Equal(t, 0, s.TasksCompleted)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 12, s.LongestStreak)

	big := LevelThresholds()[MaxLevel]
	s, invalid, err = DecodeSnapshot(`{"totalPoints":` + strconv.Itoa(big) + `}`)
	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Equal(t, big, s.TotalPoints)
}

func TestDecodeSnapshotClampsLevel(t *testing.T) {
	s, _, err := DecodeSnapshot(`{"currentLevel":99}`)
	require.NoError(t, err)
	assert.Equal(t, MaxLevel, s.CurrentLevel)
}

func TestDecodeSnapshotRejectsNonObjects(t *testing.T) {
	for _, raw := range []string{"", "null", "[1,2]", `"text"`, "{"} {
		s, _, err := DecodeSnapshot(raw)
		require.ErrorIs(t, err, ErrDeserialization, "raw=%q", raw)
		assert.Equal(t, DefaultSnapshot(), s)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	at := time.Date(2026, time.January, 2, 3, 4, 5, 6_000_000, time.UTC)
	in := Snapshot{
		TotalPoints:    1318,
		CurrentLevel:   6,
		CurrentStreak:  30,
		LongestStreak:  31,
		TasksCompleted: 100,
		Badges:         []BadgeID{BadgeFirstTask, BadgeMonthMaster, BadgePointsMaster},
		LastActiveDate: &at,
		ActiveDays:     44,
	}
	raw, err := EncodeSnapshot(in)
	require.NoError(t, err)
	out, invalid, err := DecodeSnapshot(raw)
	require.NoError(t, err)
	assert.Empty(t, invalid)

	require.NotNil(t, out.LastActiveDate)
	assert.True(t, at.Equal(*out.LastActiveDate))
	in.LastActiveDate, out.LastActiveDate = nil, nil
	assert.Equal(t, in, out)
}
