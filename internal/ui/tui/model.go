package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"focustrack/internal/core/analytics"
	"focustrack/internal/core/model"
	"focustrack/internal/core/pomodoro"
	"focustrack/internal/core/timer"
	"focustrack/internal/ui/theme"
)

type mode int

const (
	modeTimer mode = iota
	modeNote
)

const progressWidth = 30

type timerModel struct {
	ctx        context.Context
	controller *pomodoro.Controller
	events     <-chan timer.Event

	mode     mode
	finished model.SessionType
	note     textinput.Model
	lastLog  string
}

type engineEventMsg timer.Event

type eventsClosedMsg struct{}

type savedMsg pomodoro.Completion

func newTimerModel(ctx context.Context, controller *pomodoro.Controller, events <-chan timer.Event) timerModel {
	note := textinput.New()
	note.Placeholder = "What did you work on? (optional)"
	note.CharLimit = 280
	note.Width = 48
	return timerModel{
		ctx:        ctx,
		controller: controller,
		events:     events,
		note:       note,
		lastLog:    "Press s to start.",
	}
}

func (m timerModel) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m timerModel) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return engineEventMsg(event)
	}
}

func (m timerModel) saveCmd(finished model.SessionType, note string) tea.Cmd {
	return func() tea.Msg {
		return savedMsg(m.controller.Save(m.ctx, finished, note))
	}
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case engineEventMsg:
		if msg.Type != timer.EventCompleted {
			return m, m.waitForEvent()
		}
		m.controller.Finished(m.ctx, msg.SessionType)
		m.mode = modeNote
		m.finished = msg.SessionType
		m.note.Reset()
		m.lastLog = fmt.Sprintf("%s finished. Add a note and press enter, or esc to discard.", msg.SessionType.Label())
		return m, tea.Batch(m.waitForEvent(), m.note.Focus())
	case eventsClosedMsg:
		return m, tea.Quit
	case savedMsg:
		m.lastLog = savedLog(pomodoro.Completion(msg))
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeNote {
			return m.updateNote(msg)
		}
		return m.updateTimer(msg)
	}
	return m, nil
}

func (m timerModel) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	engine := m.controller.Engine()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "s", " ":
		engine.Start()
		m.lastLog = "Running."
	case "p":
		engine.Pause()
		m.lastLog = "Paused."
	case "r":
		engine.Reset()
		m.lastLog = "Reset."
	case "f":
		engine.SwitchType(model.SessionFocus)
		m.lastLog = "Switched to Deep Focus."
	case "b":
		engine.SwitchType(model.SessionBreak)
		m.lastLog = "Switched to Break."
	}
	return m, nil
}

func (m timerModel) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		note := m.note.Value()
		m.mode = modeTimer
		m.note.Blur()
		m.lastLog = "Saving…"
		return m, m.saveCmd(m.finished, note)
	case "esc":
		m.controller.Discard(m.finished)
		m.mode = modeTimer
		m.note.Blur()
		m.lastLog = "Session discarded."
		return m, nil
	}
	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return m, cmd
}

func (m timerModel) View() string {
	snapshot := m.controller.Engine().Snapshot()
	stats := m.controller.Store().Stats()
	goal := m.controller.Store().DailyGoal()

	var out strings.Builder
	out.WriteString(theme.Heading(theme.IconTimer, snapshot.SessionType.Label()) + "\n\n")
	out.WriteString(theme.Clock.Render(timer.FormatRemaining(snapshot.Remaining)) + stateTag(snapshot.State) + "\n")
	out.WriteString(theme.ProgressBar(snapshot.Progress, progressWidth) + "\n\n")

	out.WriteString(theme.LabelValue("Today", fmt.Sprintf("%d/%d", stats.TodaySessions, goal)) + "  ")
	out.WriteString(theme.ProgressBar(stats.GoalProgress(goal)/100, 10) + "\n")
	out.WriteString(theme.LabelValue("Total", stats.TotalSessions) + "  ")
	out.WriteString(theme.LabelValue("Streak", fmt.Sprintf("%d days", stats.CurrentStreak)) + "\n")
	out.WriteString(badgeLine(m.controller.Store().Badges()) + "\n\n")

	if m.mode == modeNote {
		out.WriteString(theme.H2.Render("📝 Note") + "\n")
		out.WriteString(m.note.View() + "\n\n")
		out.WriteString(theme.Muted.Render("enter: save · esc: discard") + "\n")
	} else {
		out.WriteString(theme.Muted.Render("s: start · p: pause · r: reset · f: focus · b: break · q: quit") + "\n")
	}
	out.WriteString("\n" + m.lastLog + "\n")
	return out.String()
}

func stateTag(state timer.State) string {
	switch state {
	case timer.StateRunning:
		return theme.Good.Render("running")
	case timer.StatePaused:
		return theme.Warn.Render("paused")
	default:
		return theme.Muted.Render("idle")
	}
}

func badgeLine(earned []analytics.BadgeID) string {
	parts := make([]string, 0, len(earned))
	for _, badge := range analytics.Badges() {
		if containsBadge(earned, badge.ID) {
			parts = append(parts, badge.Icon)
		} else {
			parts = append(parts, theme.Muted.Render("·"))
		}
	}
	return theme.LabelValue("Badges", strings.Join(parts, " "))
}

func containsBadge(earned []analytics.BadgeID, id analytics.BadgeID) bool {
	for _, candidate := range earned {
		if candidate == id {
			return true
		}
	}
	return false
}

func savedLog(completion pomodoro.Completion) string {
	log := fmt.Sprintf("Saved %d-minute %s session.", completion.Session.Duration, completion.Session.Type)
	for _, badge := range completion.Earned {
		log += fmt.Sprintf(" %s %s unlocked!", badge.Icon, badge.Name)
	}
	if completion.Next != completion.Session.SessionType() {
		log += " Next up: " + completion.Next.Label() + "."
	}
	return log
}
