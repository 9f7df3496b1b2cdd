package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hireloop/hrms-ui-api/config"
	"github.com/hireloop/hrms-ui-api/internal/adapters/localstore"
	redisadapter "github.com/hireloop/hrms-ui-api/internal/adapters/redis"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// StorageConfig contains configuration for session and state storage.
type StorageConfig struct {
	Store  config.StoreConfig
	Redis  config.RedisConfig
	Logger *slog.Logger
}

// Storage groups the persistence adapters the services depend on. Cache
// is nil for drivers without a TTL cache; the dashboard service treats
// that as cache-off.
type Storage struct {
	Sessions ports.SessionStore
	State    ports.StatePersister
	Cache    ports.CacheRepository

	closeFn func() error
}

// Close releases the underlying connection or file handle.
func (s *Storage) Close() error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// OpenStorage builds the storage adapters for the configured driver.
func OpenStorage(cfg StorageConfig) (*Storage, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverSQLite:
		return openSQLiteStorage(cfg)
	default:
		return openRedisStorage(cfg)
	}
}

func openRedisStorage(cfg StorageConfig) (*Storage, error) {
	client, err := ConnectRedis(cfg.Redis, cfg.Logger)
	if err != nil {
		return nil, err
	}
	return &Storage{
		Sessions: redisadapter.NewSessionStoreWithPrefix(client, "session:"),
		State:    redisadapter.NewStatePersister(client, cfg.Store.StateKey),
		Cache:    redisadapter.NewCacheRepo(client, "cache:"),
		closeFn:  client.Close,
	}, nil
}

func openSQLiteStorage(cfg StorageConfig) (*Storage, error) {
	store, err := localstore.Open(cfg.Store.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	// SQLite has no TTL; sweep leftovers from the previous run.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	purged, err := store.PurgeExpiredSessions(ctx)
	if err != nil && cfg.Logger != nil {
		cfg.Logger.Warn("purge expired sessions failed", "error", err)
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("using sqlite storage", "path", cfg.Store.SQLitePath, "sessions_purged", purged)
	}
	return &Storage{
		Sessions: store,
		State:    localstore.StatePersisterAdapter{Store: store},
		closeFn:  store.Close,
	}, nil
}

// ConnectRedis establishes and verifies a connection to Redis.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func ConnectRedis(cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Info("connected to redis", "addr", cfg.Addr, "db", cfg.DB)
	}
	return client, nil
}
