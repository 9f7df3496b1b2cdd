package ports

import (
	"context"
	"time"
)

// StatePersister stores the allowlisted subset of UI state so it
// survives restarts. Keys are top-level state paths; values are their
// JSON encodings.
type StatePersister interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// CacheRepository is a small TTL cache used for expensive read-mostly
// aggregates such as dashboard statistics.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
