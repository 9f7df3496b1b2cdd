// Package localstore provides a file-backed fallback for sessions and
// persisted UI state when no Redis is configured, such as single-user
// desktop deployments. It uses an embedded SQLite database.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	domainauth "github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS ui_state (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);
`

// Store implements SessionStore and StatePersister on one SQLite file.
type Store struct {
	db *sql.DB
}

var (
	_ ports.SessionStore   = (*Store)(nil)
	_ ports.StatePersister = StatePersisterAdapter{}
)

// Open opens (creating if needed) the database at path. Use ":memory:"
// for tests.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("localstore: path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("localstore open: %w", err)
	}
	// SQLite handles one writer at a time; serialize at the pool level.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("localstore schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Save(ctx context.Context, sess *domainauth.Session) error {
	if sess == nil || sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if !sess.ExpiresAt.After(time.Now()) {
		return errors.New("session is expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, data, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at`,
		sess.ID, data, sess.ExpiresAt.Unix())
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*domainauth.Session, error) {
	if id == "" {
		return nil, ports.ErrNotFound
	}

	var data []byte
	var expiresAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT data, expires_at FROM sessions WHERE id = ?`, id).Scan(&data, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("localstore get: %w", err)
	}

	if time.Unix(expiresAt, 0).Before(time.Now()) {
		if err := s.Delete(ctx, id); err != nil {
			return nil, fmt.Errorf("cleanup expired session: %w", err)
		}
		return nil, ports.ErrNotFound
	}

	var sess domainauth.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

// SaveState persists one UI state entry.
func (s *Store) SaveState(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("localstore: empty state key")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ui_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

// LoadState returns all persisted UI state entries.
func (s *Store) LoadState(ctx context.Context) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM ui_state`)
	if err != nil {
		return nil, fmt.Errorf("localstore load: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("localstore scan: %w", err)
		}
		out[key] = value
	}
	return out, rows.Err()
}

// ClearState drops all persisted UI state.
func (s *Store) ClearState(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM ui_state`)
	return err
}

// PurgeExpiredSessions deletes sessions past their expiry. SQLite has
// no TTL, so the admin CLI and startup call this explicitly.
func (s *Store) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// StatePersisterAdapter exposes the ui_state half of the store under the
// StatePersister method names.
type StatePersisterAdapter struct{ *Store }

func (a StatePersisterAdapter) Save(ctx context.Context, key string, value []byte) error {
	return a.SaveState(ctx, key, value)
}

func (a StatePersisterAdapter) Load(ctx context.Context) (map[string][]byte, error) {
	return a.LoadState(ctx)
}

func (a StatePersisterAdapter) Clear(ctx context.Context) error {
	return a.ClearState(ctx)
}
