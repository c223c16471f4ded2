package progress

// BadgeID is the stable identifier stored in the snapshot.
type BadgeID string

const (
	BadgeFirstTask            BadgeID = "first_task"
	BadgeWeekWarrior          BadgeID = "week_warrior"
	BadgeMonthMaster          BadgeID = "month_master"
	BadgeHundredClub          BadgeID = "hundred_club"
	BadgeRomanceExpert        BadgeID = "romance_expert"
	BadgeLoveGuru             BadgeID = "love_guru"
	BadgeRelationshipChampion BadgeID = "relationship_champion"
	BadgeStreakLegend         BadgeID = "streak_legend"
	BadgePointsMaster         BadgeID = "points_master"
	BadgeDedicationAward      BadgeID = "dedication_award"
)

const (
	PointsMasterThreshold = 1000
	DedicationDays        = 100
)

// Exact-match award tables. Streaks move by one at a time, so an exact
// match on the streak can never be skipped. Levels can jump several steps
// on a big award, in which case the level badge is not given.
var (
	levelBadges = map[int]BadgeID{
		5:  BadgeRomanceExpert,
		10: BadgeLoveGuru,
		20: BadgeRelationshipChampion,
	}
	streakBadges = map[int]BadgeID{
		7:  BadgeWeekWarrior,
		30: BadgeMonthMaster,
		50: BadgeStreakLegend,
	}
	taskCountBadges = map[int]BadgeID{
		1:   BadgeFirstTask,
		100: BadgeHundredClub,
	}
)

// Badge is the display metadata for a badge id.
type Badge struct {
	ID          BadgeID
	Name        string
	Description string
	Icon        string
}

// BadgeCatalog returns every known badge in display order.
func BadgeCatalog() []Badge {
	return []Badge{
		{BadgeFirstTask, "First Step", "Complete your first task", "💌"},
		{BadgeWeekWarrior, "Week Warrior", "Keep a 7-day streak", "🔥"},
		{BadgeMonthMaster, "Month Master", "Keep a 30-day streak", "📅"},
		{BadgeStreakLegend, "Streak Legend", "Keep a 50-day streak", "🌟"},
		{BadgeHundredClub, "Hundred Club", "Complete 100 tasks", "💯"},
		{BadgeRomanceExpert, "Romance Expert", "Reach level 5", "🌹"},
		{BadgeLoveGuru, "Love Guru", "Reach level 10", "💘"},
		{BadgeRelationshipChampion, "Relationship Champion", "Reach level 20", "🏆"},
		{BadgePointsMaster, "Points Master", "Earn 1000 points", "💎"},
		{BadgeDedicationAward, "Dedication Award", "Be active on 100 different days", "🎖️"},
	}
}

// LookupBadge returns catalog metadata for id. Unknown ids get a bare entry.
func LookupBadge(id BadgeID) Badge {
	for _, b := range BadgeCatalog() {
		if b.ID == id {
			return b
		}
	}
	return Badge{ID: id, Name: string(id), Icon: "🏅"}
}

// Achievement pairs a catalog badge with its earned status.
type Achievement struct {
	Badge
	Earned bool
}

// Achievements lists the whole catalog against the snapshot's badge set.
func Achievements(s Snapshot) []Achievement {
	catalog := BadgeCatalog()
	out := make([]Achievement, 0, len(catalog))
	for _, b := range catalog {
		out = append(out, Achievement{Badge: b, Earned: s.HasBadge(b.ID)})
	}
	return out
}

// CountEarned returns how many catalog badges the snapshot holds.
func CountEarned(s Snapshot) int {
	n := 0
	for _, a := range Achievements(s) {
		if a.Earned {
			n++
		}
	}
	return n
}
