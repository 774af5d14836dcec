package analytics

import "slices"

// BadgeID identifies a badge in the persisted badge set.
type BadgeID string

const (
	BadgeFirst   BadgeID = "first"
	BadgeVeteran BadgeID = "veteran"
	BadgeDaily   BadgeID = "daily"
	BadgeStreak  BadgeID = "streak"
)

const (
	veteranSessions = 10
	streakDays      = 3
)

// Badge describes an achievement the user can earn.
type Badge struct {
	ID          BadgeID
	Icon        string
	Name        string
	Description string
}

type badgeRule struct {
	badge  Badge
	earned func(stats Stats, dailyGoal int) bool
}

// Rules are evaluated in this order; it is also the display order.
var badgeRules = []badgeRule{
	{
		badge: Badge{ID: BadgeFirst, Icon: "🎯", Name: "First Session", Description: "Complete your first session"},
		earned: func(stats Stats, _ int) bool {
			return stats.TotalSessions >= 1
		},
	},
	{
		badge: Badge{ID: BadgeVeteran, Icon: "🏆", Name: "Veteran", Description: "Complete 10 sessions"},
		earned: func(stats Stats, _ int) bool {
			return stats.TotalSessions >= veteranSessions
		},
	},
	{
		badge: Badge{ID: BadgeDaily, Icon: "📅", Name: "Daily Goal", Description: "Reach your daily goal"},
		earned: func(stats Stats, dailyGoal int) bool {
			return stats.TodaySessions >= dailyGoal
		},
	},
	{
		badge: Badge{ID: BadgeStreak, Icon: "🔥", Name: "On Fire", Description: "Keep a 3-day streak"},
		earned: func(stats Stats, _ int) bool {
			return stats.CurrentStreak >= streakDays
		},
	},
}

// Badges returns every badge definition in display order.
func Badges() []Badge {
	badges := make([]Badge, 0, len(badgeRules))
	for _, rule := range badgeRules {
		badges = append(badges, rule.badge)
	}
	return badges
}

// LookupBadge returns the definition of id.
func LookupBadge(id BadgeID) (Badge, bool) {
	for _, rule := range badgeRules {
		if rule.badge.ID == id {
			return rule.badge, true
		}
	}
	return Badge{}, false
}

// EarnBadges evaluates every rule against stats and returns the union of
// earned and the newly earned badges, plus the new ones alone. Earned badges
// are never removed and never repeated.
func EarnBadges(stats Stats, dailyGoal int, earned []BadgeID) (all []BadgeID, added []BadgeID) {
	all = make([]BadgeID, 0, len(badgeRules))
	for _, id := range earned {
		if !slices.Contains(all, id) {
			all = append(all, id)
		}
	}
	for _, rule := range badgeRules {
		if slices.Contains(all, rule.badge.ID) || !rule.earned(stats, dailyGoal) {
			continue
		}
		all = append(all, rule.badge.ID)
		added = append(added, rule.badge.ID)
	}
	return all, added
}
