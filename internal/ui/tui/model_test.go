package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustrack/internal/core/analytics"
	"focustrack/internal/core/model"
	"focustrack/internal/core/pomodoro"
	"focustrack/internal/core/timer"
	"focustrack/internal/storage"
)

func newTestModel(t *testing.T) timerModel {
	t.Helper()
	engine := timer.New(model.SessionFocus, timer.Config{Manual: true})
	t.Cleanup(engine.Close)
	store := analytics.NewStore(storage.NewMemoryKV())
	controller := pomodoro.New(engine, store, pomodoro.Options{AutoSwitch: true})
	return newTimerModel(context.Background(), controller, engine.Subscribe(eventBuffer))
}

func keyRunes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func update(t *testing.T, m timerModel, msg tea.Msg) (timerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(timerModel)
	require.True(t, ok)
	return updated, cmd
}

func TestKeysDriveEngine(t *testing.T) {
	m := newTestModel(t)
	engine := m.controller.Engine()

	m, _ = update(t, m, keyRunes("s"))
	assert.Equal(t, timer.StateRunning, engine.Snapshot().State)

	m, _ = update(t, m, keyRunes("p"))
	assert.Equal(t, timer.StatePaused, engine.Snapshot().State)

	m, _ = update(t, m, keyRunes("b"))
	assert.Equal(t, model.SessionBreak, engine.Snapshot().SessionType)
	assert.Equal(t, 5*time.Minute, engine.Snapshot().Remaining)

	m, _ = update(t, m, keyRunes("f"))
	m, _ = update(t, m, keyRunes("s"))
	engine.Tick()
	m, _ = update(t, m, keyRunes("r"))
	assert.Equal(t, timer.StateIdle, engine.Snapshot().State)
	assert.Equal(t, 25*time.Minute, engine.Snapshot().Remaining)
	assert.Equal(t, "Reset.", m.lastLog)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := update(t, m, keyRunes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCompletionSavesNoteAndSwitches(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, engineEventMsg(timer.Event{Type: timer.EventCompleted, SessionType: model.SessionFocus}))
	require.Equal(t, modeNote, m.mode)
	assert.Contains(t, m.View(), "Note")

	m, _ = update(t, m, keyRunes("draft intro"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, modeTimer, m.mode)

	m, _ = update(t, m, cmd())

	sessions := m.controller.Store().Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "draft intro", sessions[0].Note)
	assert.Equal(t, "Deep Focus", sessions[0].Type)
	assert.Equal(t, model.SessionBreak, m.controller.Engine().Snapshot().SessionType)
	assert.Contains(t, m.lastLog, "First Session unlocked!")
	assert.Contains(t, m.lastLog, "Next up: Break.")
}

func TestCompletionDiscard(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, engineEventMsg(timer.Event{Type: timer.EventCompleted, SessionType: model.SessionBreak}))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Equal(t, modeTimer, m.mode)
	assert.Empty(t, m.controller.Store().Sessions())
	assert.Equal(t, "Session discarded.", m.lastLog)
}

func TestTimerKeysIgnoredWhileTypingNote(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, engineEventMsg(timer.Event{Type: timer.EventCompleted, SessionType: model.SessionFocus}))
	m, _ = update(t, m, keyRunes("s"))

	assert.Equal(t, timer.StateIdle, m.controller.Engine().Snapshot().State)
	assert.Equal(t, "s", m.note.Value())
}

func TestViewShowsTimer(t *testing.T) {
	m := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "Deep Focus")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "0/4")
}

func TestClosedEventsQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := update(t, m, eventsClosedMsg{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
