package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustrack/internal/core/model"
)

func openBackends(t *testing.T) map[string]Backend {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	sqliteKV, err := OpenSQLiteKV(ctx, filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	fileKV, err := OpenFileKV(filepath.Join(dir, "state.json"))
	require.NoError(t, err)

	backends := map[string]Backend{
		BackendSQLite: sqliteKV,
		BackendFile:   fileKV,
		BackendMemory: NewMemoryKV(),
	}
	t.Cleanup(func() {
		for _, backend := range backends {
			_ = backend.Close()
		}
	})
	return backends
}

func TestKVContract(t *testing.T) {
	ctx := context.Background()
	for name, backend := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := backend.Get(ctx, "sessions")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, backend.Set(ctx, "sessions", `[]`))
			require.NoError(t, backend.Set(ctx, "sessions", `[{"id":1}]`))
			value, ok, err := backend.Get(ctx, "sessions")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":1}]`, value)

			batch, isBatch := backend.(BatchWriter)
			require.True(t, isBatch)
			require.NoError(t, batch.SetMany(ctx, map[string]string{"stats": `{}`, "badges": `["first"]`}))
			value, _, err = backend.Get(ctx, "badges")
			require.NoError(t, err)
			assert.Equal(t, `["first"]`, value)

			require.NoError(t, backend.Clear(ctx))
			for _, key := range []string{"sessions", "stats", "badges"} {
				_, ok, err := backend.Get(ctx, key)
				require.NoError(t, err)
				assert.False(t, ok, key)
			}
		})
	}
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "focustrack.db")

	first, err := OpenSQLiteKV(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "dailyGoal", "6"))
	require.NoError(t, first.Close())

	second, err := OpenSQLiteKV(ctx, path)
	require.NoError(t, err)
	defer second.Close()
	value, ok, err := second.Get(ctx, "dailyGoal")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "6", value)
}

func TestFileKVPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	first, err := OpenFileKV(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "darkMode", "false"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file must be renamed")

	second, err := OpenFileKV(path)
	require.NoError(t, err)
	value, ok, err := second.Get(ctx, "darkMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "false", value)
}

func TestOpenFileKVRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := OpenFileKV(path)
	assert.Error(t, err)
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := Open(ctx, model.AppConfig{StorageBackend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryKV{}, backend)

	backend, err = Open(ctx, model.AppConfig{StorageBackend: "file", DataPath: filepath.Join(dir, "s.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileKV{}, backend)

	backend, err = Open(ctx, model.AppConfig{DataPath: filepath.Join(dir, "f.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteKV{}, backend)
	require.NoError(t, backend.Close())

	_, err = Open(ctx, model.AppConfig{StorageBackend: "redis"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
