package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"focustrack/internal/core/model"
)

var referenceNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

func sessionAt(id int64, sessionType model.SessionType, at time.Time) Session {
	return NewSession(id, sessionType, "", at)
}

func daysAgo(days int) time.Time {
	return referenceNow.AddDate(0, 0, -days)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, referenceNow)

	assert.Equal(t, Stats{
		TotalMinutes:  0,
		TotalSessions: 0,
		TodaySessions: 0,
		WeekSessions:  []int{0, 0, 0, 0, 0, 0, 0},
		CurrentStreak: 0,
	}, stats)
	assert.True(t, stats.Equal(EmptyStats()))
}

func TestComputeStatsTotalsAndWeek(t *testing.T) {
	sessions := []Session{
		sessionAt(5, model.SessionFocus, referenceNow.Add(-time.Hour)),
		sessionAt(4, model.SessionBreak, referenceNow.Add(-2*time.Hour)),
		sessionAt(3, model.SessionFocus, daysAgo(1)),
		sessionAt(2, model.SessionFocus, daysAgo(6)),
		sessionAt(1, model.SessionFocus, daysAgo(7)),
	}

	stats := ComputeStats(sessions, referenceNow)

	assert.Equal(t, 25+5+25+25+25, stats.TotalMinutes)
	assert.Equal(t, 5, stats.TotalSessions)
	assert.Equal(t, 2, stats.TodaySessions)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 1, 2}, stats.WeekSessions)
}

func TestComputeStatsStreak(t *testing.T) {
	cases := []struct {
		name     string
		sessions []Session
		want     int
	}{
		{
			name:     "today and yesterday",
			sessions: []Session{sessionAt(2, model.SessionFocus, referenceNow), sessionAt(1, model.SessionFocus, daysAgo(1))},
			want:     2,
		},
		{
			name:     "gap yesterday",
			sessions: []Session{sessionAt(2, model.SessionFocus, referenceNow), sessionAt(1, model.SessionFocus, daysAgo(2))},
			want:     1,
		},
		{
			name:     "nothing today",
			sessions: []Session{sessionAt(2, model.SessionFocus, daysAgo(1)), sessionAt(1, model.SessionFocus, daysAgo(2))},
			want:     0,
		},
		{
			name: "several sessions per day count once",
			sessions: []Session{
				sessionAt(5, model.SessionFocus, referenceNow),
				sessionAt(4, model.SessionBreak, referenceNow.Add(-time.Hour)),
				sessionAt(3, model.SessionFocus, referenceNow.Add(-2*time.Hour)),
				sessionAt(2, model.SessionFocus, daysAgo(1)),
				sessionAt(1, model.SessionFocus, daysAgo(3)),
			},
			want: 2,
		},
		{
			name: "unsorted input",
			sessions: []Session{
				sessionAt(1, model.SessionFocus, daysAgo(2)),
				sessionAt(3, model.SessionFocus, referenceNow),
				sessionAt(2, model.SessionFocus, daysAgo(1)),
			},
			want: 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeStats(tc.sessions, referenceNow).CurrentStreak)
		})
	}
}

func TestComputeStatsUsesLocationOfNow(t *testing.T) {
	zone := time.FixedZone("UTC-3", -3*60*60)
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, zone)
	// 01:30 UTC on the 19th is 22:30 on the 18th in UTC-3.
	lateYesterday := time.Date(2026, 10, 19, 1, 30, 0, 0, time.UTC)

	stats := ComputeStats([]Session{sessionAt(1, model.SessionFocus, lateYesterday)}, now)

	assert.Equal(t, 0, stats.TodaySessions)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 0}, stats.WeekSessions)
	assert.Equal(t, 0, stats.CurrentStreak)
}

func TestGoalProgress(t *testing.T) {
	stats := Stats{TodaySessions: 2}
	assert.Equal(t, 50.0, stats.GoalProgress(4))
	assert.Equal(t, 100.0, stats.GoalProgress(1))
	assert.Equal(t, 0.0, stats.GoalProgress(0))
}

func TestWeekLabels(t *testing.T) {
	// 2026-10-19 is a Monday.
	assert.Equal(t, []string{"Tue", "Wed", "Thu", "Fri", "Sat", "Sun", "Mon"}, WeekLabels(referenceNow))
}

func TestCloneDoesNotShareWeek(t *testing.T) {
	stats := EmptyStats()
	clone := stats.Clone()
	clone.WeekSessions[0] = 9
	assert.Equal(t, 0, stats.WeekSessions[0])
}
