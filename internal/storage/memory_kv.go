package storage

import (
	"context"
	"sync"
)

// MemoryKV keeps values in process memory.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (store *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	value, ok := store.values[key]
	return value, ok, nil
}

func (store *MemoryKV) Set(_ context.Context, key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values[key] = value
	return nil
}

func (store *MemoryKV) SetMany(_ context.Context, values map[string]string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	for key, value := range values {
		store.values[key] = value
	}
	return nil
}

func (store *MemoryKV) Clear(context.Context) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values = make(map[string]string)
	return nil
}

func (store *MemoryKV) Close() error {
	return nil
}
