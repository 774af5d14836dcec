package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"focustrack/internal/core/pomodoro"
)

// eventBuffer keeps a completion from being dropped while the view renders.
const eventBuffer = 16

// RunTimer runs the terminal timer until the user quits.
func RunTimer(ctx context.Context, controller *pomodoro.Controller, in io.Reader, out io.Writer) error {
	events := controller.Engine().Subscribe(eventBuffer)
	m := newTimerModel(ctx, controller, events)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
