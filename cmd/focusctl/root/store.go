package root

import (
	"context"

	"focustrack/internal/core/analytics"
	"focustrack/internal/logging"
	"focustrack/internal/storage"
)

func openStore(ctx context.Context, opts *options) (*analytics.Store, func(), error) {
	backend, err := storage.Open(ctx, opts.config)
	if err != nil {
		return nil, nil, err
	}
	store := analytics.NewStore(backend, analytics.WithLogger(logging.FromContext(ctx)))
	store.Load(ctx)
	cleanup := func() {
		_ = backend.Close()
	}
	return store, cleanup, nil
}
