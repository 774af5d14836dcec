package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEarnBadgesThresholds(t *testing.T) {
	cases := []struct {
		name  string
		stats Stats
		goal  int
		want  []BadgeID
	}{
		{"nothing", EmptyStats(), 4, []BadgeID{}},
		{"first", Stats{TotalSessions: 1, TodaySessions: 1, CurrentStreak: 1}, 4, []BadgeID{BadgeFirst}},
		{"goal met", Stats{TotalSessions: 4, TodaySessions: 4, CurrentStreak: 1}, 4, []BadgeID{BadgeFirst, BadgeDaily}},
		{"lower goal", Stats{TotalSessions: 2, TodaySessions: 2, CurrentStreak: 1}, 2, []BadgeID{BadgeFirst, BadgeDaily}},
		{"all", Stats{TotalSessions: 10, TodaySessions: 4, CurrentStreak: 3}, 4, []BadgeID{BadgeFirst, BadgeVeteran, BadgeDaily, BadgeStreak}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			all, added := EarnBadges(tc.stats, tc.goal, nil)
			assert.Equal(t, tc.want, all)
			assert.ElementsMatch(t, tc.want, added)
		})
	}
}

func TestEarnBadgesIsMonotonicAndUnique(t *testing.T) {
	earned := []BadgeID{BadgeStreak, BadgeFirst, BadgeFirst}

	all, added := EarnBadges(Stats{TotalSessions: 1, TodaySessions: 1}, 4, earned)

	assert.Equal(t, []BadgeID{BadgeStreak, BadgeFirst}, all)
	assert.Empty(t, added)
}

func TestEarnBadgesDoesNotAliasInput(t *testing.T) {
	earned := make([]BadgeID, 1, 8)
	earned[0] = BadgeFirst

	all, _ := EarnBadges(Stats{TotalSessions: 10}, 4, earned)
	all[0] = BadgeStreak

	assert.Equal(t, BadgeFirst, earned[0])
}

func TestBadgeDefinitions(t *testing.T) {
	badges := Badges()
	ids := make([]BadgeID, 0, len(badges))
	for _, badge := range badges {
		ids = append(ids, badge.ID)
		assert.NotEmpty(t, badge.Icon)
		assert.NotEmpty(t, badge.Name)
	}
	assert.Equal(t, []BadgeID{BadgeFirst, BadgeVeteran, BadgeDaily, BadgeStreak}, ids)

	badge, ok := LookupBadge(BadgeStreak)
	assert.True(t, ok)
	assert.Equal(t, "On Fire", badge.Name)

	_, ok = LookupBadge("legend")
	assert.False(t, ok)
}
