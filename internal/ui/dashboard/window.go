package dashboard

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"focustrack/internal/core/analytics"
)

// historySize is the number of sessions listed.
const historySize = 10

// Source supplies the data shown on the dashboard.
type Source interface {
	Sessions() []analytics.Session
	Stats() analytics.Stats
	Badges() []analytics.BadgeID
	DailyGoal() int
}

// View is a plain snapshot of what the dashboard renders.
type View struct {
	Goal     string
	Progress float64
	Today    string
	Total    string
	Streak   string
	Minutes  string
	Week     []DayBar
	Badges   []BadgeRow
	History  []string
}

type DayBar struct {
	Label    string
	Count    int
	Fraction float64
}

type BadgeRow struct {
	Text   string
	Earned bool
}

// Build derives the dashboard view from source at now.
func Build(source Source, now time.Time) View {
	stats := source.Stats()
	goal := source.DailyGoal()

	view := View{
		Goal:     fmt.Sprintf("🎯 Daily goal: %d/%d", stats.TodaySessions, goal),
		Progress: stats.GoalProgress(goal) / 100,
		Today:    fmt.Sprintf("%d today", stats.TodaySessions),
		Total:    fmt.Sprintf("%d total", stats.TotalSessions),
		Streak:   fmt.Sprintf("%d day streak", stats.CurrentStreak),
		Minutes:  fmt.Sprintf("%d minutes", stats.TotalMinutes),
	}

	peak := 0
	for _, count := range stats.WeekSessions {
		peak = max(peak, count)
	}
	labels := analytics.WeekLabels(now)
	for i, count := range stats.WeekSessions {
		bar := DayBar{Label: labels[i], Count: count}
		if peak > 0 {
			bar.Fraction = float64(count) / float64(peak)
		}
		view.Week = append(view.Week, bar)
	}

	earned := make(map[analytics.BadgeID]bool)
	for _, id := range source.Badges() {
		earned[id] = true
	}
	for _, badge := range analytics.Badges() {
		row := BadgeRow{Text: badge.Icon + " " + badge.Name, Earned: earned[badge.ID]}
		if !row.Earned {
			row.Text = "🔒 " + badge.Name
		}
		view.Badges = append(view.Badges, row)
	}

	sessions := source.Sessions()
	for i := 0; i < len(sessions) && i < historySize; i++ {
		view.History = append(view.History, historyLine(sessions[i], now.Location()))
	}
	return view
}

func historyLine(session analytics.Session, location *time.Location) string {
	line := fmt.Sprintf("%s · %s · %d min", session.Date.In(location).Format("02/01 15:04"), session.Type, session.Duration)
	if session.Note != "" {
		line += " · " + session.Note
	}
	return line
}

// Window shows stats, the weekly chart, badges and history.
type Window struct {
	window  fyne.Window
	source  Source
	now     func() time.Time
	onClear func()
	content *fyne.Container
}

// New creates the dashboard window. onClear runs after the user confirms
// clearing all data.
func New(app fyne.App, source Source, onClear func()) *Window {
	window := app.NewWindow("FocusTrack")
	dashboard := &Window{
		window:  window,
		source:  source,
		now:     time.Now,
		onClear: onClear,
		content: container.NewVBox(),
	}

	clearButton := widget.NewButton("🗑️ Clear data", func() {
		dialog.ShowConfirm("Clear data", "Delete every session, badge and preference? This cannot be undone.", func(confirmed bool) {
			if confirmed && dashboard.onClear != nil {
				dashboard.onClear()
			}
		}, window)
	})
	clearButton.Importance = widget.DangerImportance

	window.SetContent(container.NewBorder(nil, clearButton, nil, nil, container.NewVScroll(dashboard.content)))
	window.Resize(fyne.NewSize(420, 560))
	window.SetCloseIntercept(window.Hide)
	return dashboard
}

// Show refreshes and displays the window.
func (dashboard *Window) Show() {
	dashboard.Refresh()
	dashboard.window.Show()
	dashboard.window.RequestFocus()
}

// Refresh rebuilds the content from the source.
func (dashboard *Window) Refresh() {
	view := Build(dashboard.source, dashboard.now())

	goalBar := widget.NewProgressBar()
	goalBar.SetValue(view.Progress)

	objects := []fyne.CanvasObject{
		bold(view.Goal),
		goalBar,
		container.NewGridWithColumns(2,
			widget.NewLabel(view.Today), widget.NewLabel(view.Total),
			widget.NewLabel(view.Streak), widget.NewLabel(view.Minutes),
		),
		bold("📊 This week"),
	}
	for _, day := range view.Week {
		bar := widget.NewProgressBar()
		bar.SetValue(day.Fraction)
		bar.TextFormatter = func() string { return fmt.Sprintf("%d", day.Count) }
		objects = append(objects, container.NewBorder(nil, nil, widget.NewLabel(day.Label), nil, bar))
	}

	objects = append(objects, bold("🏆 Badges"))
	badges := container.NewGridWithColumns(2)
	for _, row := range view.Badges {
		label := widget.NewLabel(row.Text)
		if !row.Earned {
			label.Importance = widget.LowImportance
		}
		badges.Add(label)
	}
	objects = append(objects, badges, bold("📜 History"))
	if len(view.History) == 0 {
		objects = append(objects, widget.NewLabel("No sessions yet."))
	}
	for _, line := range view.History {
		objects = append(objects, widget.NewLabel(line))
	}

	dashboard.content.Objects = objects
	dashboard.content.Refresh()
}

func bold(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}
