package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// CacheRepo is a TTL cache for expensive aggregates such as dashboard
// statistics. Misses return ErrNotFound.
type CacheRepo struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.CacheRepository = (*CacheRepo)(nil)

// NewCacheRepo creates a cache repository with the given key prefix.
func NewCacheRepo(client redis.UniversalClient, prefix string) *CacheRepo {
	if prefix == "" {
		prefix = "cache:"
	}
	return &CacheRepo{client: client, prefix: prefix}
}

func (c *CacheRepo) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}

func (c *CacheRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

func (c *CacheRepo) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
