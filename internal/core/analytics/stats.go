package analytics

import (
	"slices"
	"time"
)

// WeekDays is the length of the trailing window in Stats.WeekSessions.
const WeekDays = 7

const dayLayout = "2006-01-02"

// Stats aggregates the session log. It is always derived, never edited.
type Stats struct {
	TotalMinutes  int   `json:"totalMinutes"`
	TotalSessions int   `json:"totalSessions"`
	TodaySessions int   `json:"todaySessions"`
	WeekSessions  []int `json:"weekSessions"`
	CurrentStreak int   `json:"currentStreak"`
}

// EmptyStats returns the stats of an empty log.
func EmptyStats() Stats {
	return Stats{WeekSessions: make([]int, WeekDays)}
}

// ComputeStats derives Stats from sessions. Calendar days are taken in the
// location of now.
func ComputeStats(sessions []Session, now time.Time) Stats {
	stats := EmptyStats()
	location := now.Location()

	perDay := make(map[string]int, len(sessions))
	for _, session := range sessions {
		stats.TotalMinutes += session.Duration
		perDay[session.Date.In(location).Format(dayLayout)]++
	}
	stats.TotalSessions = len(sessions)

	today := startOfDay(now)
	stats.TodaySessions = perDay[today.Format(dayLayout)]

	for i := 0; i < WeekDays; i++ {
		day := today.AddDate(0, 0, i-(WeekDays-1))
		stats.WeekSessions[i] = perDay[day.Format(dayLayout)]
	}

	// Each calendar day counts once, however many sessions it holds.
	for day := today; perDay[day.Format(dayLayout)] > 0; day = day.AddDate(0, 0, -1) {
		stats.CurrentStreak++
	}

	return stats
}

// Equal reports whether both values hold the same counts.
func (stats Stats) Equal(other Stats) bool {
	return stats.TotalMinutes == other.TotalMinutes &&
		stats.TotalSessions == other.TotalSessions &&
		stats.TodaySessions == other.TodaySessions &&
		stats.CurrentStreak == other.CurrentStreak &&
		slices.Equal(stats.WeekSessions, other.WeekSessions)
}

// Clone returns a copy that does not share WeekSessions.
func (stats Stats) Clone() Stats {
	stats.WeekSessions = slices.Clone(stats.WeekSessions)
	return stats
}

// GoalProgress returns today's progress toward goal as a percentage capped
// at 100.
func (stats Stats) GoalProgress(goal int) float64 {
	if goal <= 0 {
		return 0
	}
	progress := float64(stats.TodaySessions) / float64(goal) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// WeekLabels names the days of Stats.WeekSessions, oldest first.
func WeekLabels(now time.Time) []string {
	today := startOfDay(now)
	labels := make([]string, WeekDays)
	for i := range labels {
		labels[i] = today.AddDate(0, 0, i-(WeekDays-1)).Format("Mon")
	}
	return labels
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
