package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelThresholdTable(t *testing.T) {
	th := LevelThresholds()
	require.Len(t, th, MaxLevel+1)
	assert.Equal(t, []int{0, 100, 250, 475, 812, 1318}, th[:6])
	for i := 1; i < len(th); i++ {
		assert.Greater(t, th[i], th[i-1], "threshold %d", i)
	}

	th[1] = -1
	assert.Equal(t, 100, LevelThresholds()[1], "callers must get a copy")
}

func TestPointsToLeaveLevel(t *testing.T) {
	assert.Equal(t, 100, PointsToLeaveLevel(1))
	assert.Equal(t, 150, PointsToLeaveLevel(2))
	assert.Equal(t, 225, PointsToLeaveLevel(3))
	assert.Equal(t, 337, PointsToLeaveLevel(4))
	assert.Equal(t, 100, PointsToLeaveLevel(0))
}

func TestLevelForPointsBoundaries(t *testing.T) {
	th := LevelThresholds()
	for n := 0; n < MaxLevel; n++ {
		assert.Equal(t, n+1, LevelForPoints(th[n]), "points=%d", th[n])
		if th[n] > 0 {
			assert.Equal(t, n, LevelForPoints(th[n]-1), "points=%d", th[n]-1)
		}
	}
	assert.Equal(t, MaxLevel, LevelForPoints(th[MaxLevel]))
	assert.Equal(t, MaxLevel, LevelForPoints(th[MaxLevel]*10))
	assert.Equal(t, 1, LevelForPoints(0))
}

func TestThresholdForLevel(t *testing.T) {
	assert.Equal(t, 0, ThresholdForLevel(0))
	assert.Equal(t, 0, ThresholdForLevel(1))
	assert.Equal(t, 100, ThresholdForLevel(2))
	assert.Equal(t, 250, ThresholdForLevel(3))
	assert.Equal(t, LevelThresholds()[MaxLevel-1], ThresholdForLevel(MaxLevel))
	assert.Equal(t, LevelThresholds()[MaxLevel], ThresholdForLevel(MaxLevel+5))
}

func TestSnapshotLevelGetters(t *testing.T) {
	s := Snapshot{TotalPoints: 175, CurrentLevel: 2}
	assert.Equal(t, 75, s.PointsToNextLevel())
	assert.Equal(t, 50, s.ProgressPercent())
	assert.False(t, s.ShouldLevelUp())

	lagging := Snapshot{TotalPoints: 300, CurrentLevel: 2}
	assert.True(t, lagging.ShouldLevelUp())
	assert.Equal(t, 0, lagging.PointsToNextLevel())
	assert.Equal(t, 100, lagging.ProgressPercent())

	top := Snapshot{TotalPoints: 1 << 40, CurrentLevel: MaxLevel}
	assert.Equal(t, 0, top.PointsToNextLevel())
	assert.Equal(t, 100, top.ProgressPercent())
	assert.False(t, top.ShouldLevelUp())

	fresh := DefaultSnapshot()
	assert.Equal(t, 100, fresh.PointsToNextLevel())
	assert.Equal(t, 0, fresh.ProgressPercent())
}
