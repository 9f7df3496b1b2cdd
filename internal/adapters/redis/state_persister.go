package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// StatePersister keeps the allowlisted UI state paths in a single Redis
// hash so a restart restores preferences like theme and active filters.
type StatePersister struct {
	client redis.UniversalClient
	key    string
}

var _ ports.StatePersister = (*StatePersister)(nil)

// NewStatePersister creates a persister writing to the given hash key.
// An empty key falls back to "ui_state".
func NewStatePersister(client redis.UniversalClient, key string) *StatePersister {
	if key == "" {
		key = "ui_state"
	}
	return &StatePersister{client: client, key: key}
}

func (p *StatePersister) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("state persister: empty key")
	}
	return p.client.HSet(ctx, p.key, key, value).Err()
}

func (p *StatePersister) Load(ctx context.Context) (map[string][]byte, error) {
	raw, err := p.client.HGetAll(ctx, p.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall: %w", err)
	}
	out := make(map[string][]byte, len(raw))
	for k, v := range raw {
		out[k] = []byte(v)
	}
	return out, nil
}

func (p *StatePersister) Clear(ctx context.Context) error {
	return p.client.Del(ctx, p.key).Err()
}
