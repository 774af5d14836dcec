package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV keeps all values in one JSON object file. Every write replaces the
// file atomically.
type FileKV struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// OpenFileKV loads path, starting empty when the file does not exist.
func OpenFileKV(path string) (*FileKV, error) {
	if path == "" {
		return nil, fmt.Errorf("open state file: empty path")
	}
	store := &FileKV{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	if len(data) == 0 {
		return store, nil
	}
	if err := json.Unmarshal(data, &store.values); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	if store.values == nil {
		store.values = make(map[string]string)
	}
	return store, nil
}

func (store *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	value, ok := store.values[key]
	return value, ok, nil
}

func (store *FileKV) Set(_ context.Context, key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	previous, existed := store.values[key]
	store.values[key] = value
	if err := store.saveLocked(); err != nil {
		if existed {
			store.values[key] = previous
		} else {
			delete(store.values, key)
		}
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

func (store *FileKV) SetMany(_ context.Context, values map[string]string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	next := make(map[string]string, len(store.values)+len(values))
	for key, value := range store.values {
		next[key] = value
	}
	for key, value := range values {
		next[key] = value
	}
	previous := store.values
	store.values = next
	if err := store.saveLocked(); err != nil {
		store.values = previous
		return fmt.Errorf("kv set many: %w", err)
	}
	return nil
}

func (store *FileKV) Clear(context.Context) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if err := os.Remove(store.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("kv clear: %w", err)
	}
	store.values = make(map[string]string)
	return nil
}

func (store *FileKV) Close() error {
	return nil
}

func (store *FileKV) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	data, err := json.MarshalIndent(store.values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	tmp := store.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, store.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
