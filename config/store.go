package config

import (
	"fmt"
	"strings"
	"time"
)

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// StoreDriver selects the session/state persistence backend.
type StoreDriver string

const (
	// StoreDriverRedis keeps sessions and UI state in Redis.
	StoreDriverRedis StoreDriver = "redis"
	// StoreDriverSQLite keeps them in a local SQLite file, for
	// single-node and development deployments.
	StoreDriverSQLite StoreDriver = "sqlite"
)

// UnmarshalText implements encoding.TextUnmarshaler for StoreDriver.
func (d *StoreDriver) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "redis", "sqlite":
		*d = StoreDriver(v)
		return nil
	default:
		return fmt.Errorf("invalid StoreDriver: %q (valid options: redis, sqlite)", v)
	}
}

// StoreConfig contains session and UI state storage configuration.
type StoreConfig struct {
	// Driver selects where sessions and persisted UI state live.
	Driver StoreDriver `env:"STORE_DRIVER" envDefault:"redis"`

	// SQLitePath is the database file used when Driver=sqlite.
	SQLitePath string `env:"STORE_SQLITE_PATH" envDefault:"hrms-ui.db"`

	// StateKey is the Redis hash key holding persisted UI state.
	StateKey string `env:"STORE_STATE_KEY" envDefault:"ui_state"`

	// CacheTTL bounds how long dashboard stats stay cached.
	CacheTTL time.Duration `env:"STORE_CACHE_TTL" envDefault:"1m"`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StoreConfig) Sanitize() {
	s.SQLitePath = strings.TrimSpace(s.SQLitePath)
	if s.SQLitePath == "" {
		s.SQLitePath = "hrms-ui.db"
	}
	if s.StateKey = strings.TrimSpace(s.StateKey); s.StateKey == "" {
		s.StateKey = "ui_state"
	}
	if s.CacheTTL <= 0 {
		s.CacheTTL = time.Minute
	}
}
