package ports

import (
	"context"
	"errors"

	"github.com/hireloop/hrms-ui-api/internal/domain/auth"
)

// ErrNotFound is returned by session stores when no session exists for
// the given id.
var ErrNotFound = errors.New("not found")

// AuthProvider abstracts the upstream identity provider (Google OIDC in
// production, a static provider in dev mode).
type AuthProvider interface {
	// Begin returns the provider redirect URL plus the state and nonce
	// values the callback must echo.
	Begin(ctx context.Context) (authURL, state, nonce string, err error)

	// Exchange redeems an authorization code for a verified identity.
	Exchange(ctx context.Context, code, state, nonce string) (auth.Identity, error)
}

// SessionStore persists browser sessions keyed by session id.
type SessionStore interface {
	Save(ctx context.Context, s *auth.Session) error
	// Get returns ErrNotFound when the id is unknown or expired.
	Get(ctx context.Context, id string) (*auth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleMapper resolves an identity's directory groups to an application
// role. The second return is false when no mapping matched, in which
// case the backend's own user record decides.
type RoleMapper interface {
	Map(groups []string) (auth.Role, bool)
}
