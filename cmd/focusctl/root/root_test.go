package root

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustrack/internal/core/analytics"
	"focustrack/internal/core/model"
	"focustrack/internal/storage"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// writeConfig stores a file-backed config in a temp dir and returns its path.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	config := storage.DefaultConfig(dir)
	config.StorageBackend = storage.BackendFile
	config.DataPath = filepath.Join(dir, "state.json")
	config.LogLevel = "error"
	require.NoError(t, storage.SaveConfig(path, config))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func seedSessions(t *testing.T, configPath string, notes ...string) {
	t.Helper()
	ctx := context.Background()
	config, err := storage.LoadConfig(configPath)
	require.NoError(t, err)
	backend, err := storage.Open(ctx, config)
	require.NoError(t, err)
	defer backend.Close()

	store := analytics.NewStore(backend)
	store.Load(ctx)
	for _, note := range notes {
		store.RecordCompletion(ctx, model.SessionFocus, note)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "focusctl v"+Version+"\n", out)
}

func TestGoalPersists(t *testing.T) {
	config := writeConfig(t)

	out, err := execute(t, "--config", config, "goal", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily goal set")

	out, err = execute(t, "--config", config, "goal")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily goal: 6")
}

func TestGoalRejectsText(t *testing.T) {
	_, err := execute(t, "--config", writeConfig(t), "goal", "lots")
	assert.ErrorContains(t, err, "goal must be a number")
}

func TestMemoryFlagDoesNotPersist(t *testing.T) {
	config := writeConfig(t)

	_, err := execute(t, "--config", config, "--memory", "goal", "9")
	require.NoError(t, err)

	out, err := execute(t, "--config", config, "goal")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily goal: 4")
}

func TestTheme(t *testing.T) {
	config := writeConfig(t)

	out, err := execute(t, "--config", config, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "dark")

	_, err = execute(t, "--config", config, "theme", "light")
	require.NoError(t, err)
	out, err = execute(t, "--config", config, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "light")

	_, err = execute(t, "--config", config, "theme", "blue")
	assert.Error(t, err)
}

func TestStatsAndHistory(t *testing.T) {
	config := writeConfig(t)
	seedSessions(t, config, "first draft", "", "final pass")

	out, err := execute(t, "--config", config, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Today: 3/4")
	assert.Contains(t, out, "Total sessions: 3")
	assert.Contains(t, out, "Total minutes: 75")
	assert.Contains(t, out, "Streak: 1 days")

	out, err = execute(t, "--config", config, "history", "--limit", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "final pass")
	assert.Contains(t, lines[1], "Deep Focus")
	assert.NotContains(t, out, "first draft")
}

func TestHistoryEmptyAndInvalidLimit(t *testing.T) {
	config := writeConfig(t)

	out, err := execute(t, "--config", config, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions yet.")

	_, err = execute(t, "--config", config, "history", "--limit", "0")
	assert.Error(t, err)
}

func TestBadges(t *testing.T) {
	config := writeConfig(t)
	seedSessions(t, config, "")

	out, err := execute(t, "--config", config, "badges")
	require.NoError(t, err)
	assert.Contains(t, out, "🎯 First Session")
	assert.Contains(t, out, "🔒 Veteran")
}

func TestClearRequiresConfirmation(t *testing.T) {
	config := writeConfig(t)
	seedSessions(t, config, "")

	_, err := execute(t, "--config", config, "clear")
	assert.ErrorIs(t, err, errNotConfirmed)

	out, err := execute(t, "--config", config, "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All data cleared")

	out, err = execute(t, "--config", config, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions yet.")
}

func TestInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage_backend: redis\n"), 0o644))

	_, err := execute(t, "--config", path, "stats")
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)
}

func TestPrintError(t *testing.T) {
	var out bytes.Buffer
	printError(&out, errNotConfirmed)
	assert.Contains(t, out.String(), errNotConfirmed.Error())
}
