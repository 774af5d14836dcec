package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"focustrack/internal/core/model"
)

// ErrUnknownBackend indicates a storage_backend value with no implementation.
var ErrUnknownBackend = errors.New("unknown storage backend")

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// KV is a string-keyed store. Each operation is atomic for a single key;
// nothing is transactional across keys.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
}

// BatchWriter is implemented by backends that can write several keys at once.
type BatchWriter interface {
	SetMany(ctx context.Context, values map[string]string) error
}

// Backend is a KV owning an underlying resource.
type Backend interface {
	KV
	Close() error
}

// ParseBackend normalizes a storage_backend value.
func ParseBackend(value string) (string, error) {
	backend := strings.ToLower(strings.TrimSpace(value))
	switch backend {
	case "":
		return BackendSQLite, nil
	case BackendSQLite, BackendFile, BackendMemory:
		return backend, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, value)
	}
}

// Open returns the backend selected by config.
func Open(ctx context.Context, config model.AppConfig) (Backend, error) {
	backend, err := ParseBackend(config.StorageBackend)
	if err != nil {
		return nil, err
	}
	switch backend {
	case BackendFile:
		return OpenFileKV(config.DataPath)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return OpenSQLiteKV(ctx, config.DataPath)
	}
}
