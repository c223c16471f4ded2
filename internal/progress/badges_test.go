package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeCatalogCoversAwardTables(t *testing.T) {
	ids := map[BadgeID]bool{}
	for _, b := range BadgeCatalog() {
		assert.False(t, ids[b.ID], "duplicate badge %s", b.ID)
		ids[b.ID] = true
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Description)
	}
	for _, table := range []map[int]BadgeID{levelBadges, streakBadges, taskCountBadges} {
		for _, id := range table {
			assert.True(t, ids[id], "badge %s missing from catalog", id)
		}
	}
	assert.True(t, ids[BadgePointsMaster])
	assert.True(t, ids[BadgeDedicationAward])
}

func TestLookupBadge(t *testing.T) {
	assert.Equal(t, "Week Warrior", LookupBadge(BadgeWeekWarrior).Name)
	assert.Equal(t, "mystery", LookupBadge("mystery").Name)
}

func TestAchievements(t *testing.T) {
	s := Snapshot{Badges: []BadgeID{BadgeLoveGuru, "retired_badge"}}
	earned := 0
	for _, a := range Achievements(s) {
		if a.Earned {
			earned++
			assert.Equal(t, BadgeLoveGuru, a.ID)
		}
	}
	assert.Equal(t, 1, earned)
	assert.Equal(t, 1, CountEarned(s))
}
