package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	menus []*fyne.Menu
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menus = append(host.menus, menu)
}

func (host *fakeHost) item(t *testing.T, label string) *fyne.MenuItem {
	t.Helper()
	require.NotEmpty(t, host.menus)
	for _, item := range host.menus[len(host.menus)-1].Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu item %q not found", label)
	return nil
}

func TestMenuItemsInvokeCallbacks(t *testing.T) {
	host := &fakeHost{}
	var calls []string
	New(host, Callbacks{
		OnStart: func() { calls = append(calls, "start") },
		OnReset: func() { calls = append(calls, "reset") },
		OnBreak: func() { calls = append(calls, "break") },
		OnQuit:  func() { calls = append(calls, "quit") },
	})

	host.item(t, "Start").Action()
	host.item(t, "Reset").Action()
	host.item(t, "Break (5 min)").Action()
	host.item(t, "Preferences").Action()
	host.item(t, "Quit").Action()

	assert.Equal(t, []string{"start", "reset", "break", "quit"}, calls)
}

func TestSetRunningTogglesStartAndPause(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, Callbacks{})
	assert.False(t, host.item(t, "Start").Disabled)
	assert.True(t, host.item(t, "Pause").Disabled)

	manager.SetRunning(true)

	assert.True(t, host.item(t, "Start").Disabled)
	assert.False(t, host.item(t, "Pause").Disabled)
}

func TestSetStatus(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, Callbacks{})

	manager.SetStatus("Focus 24:13 · Today 2/4 · Streak 3")

	assert.Equal(t, "Focus 24:13 · Today 2/4 · Streak 3", manager.Status())
	status := host.menus[len(host.menus)-1].Items[0]
	assert.True(t, status.Disabled)
	assert.Equal(t, "Focus 24:13 · Today 2/4 · Streak 3", status.Label)
}
