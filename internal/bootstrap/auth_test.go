package bootstrap

import (
	"context"
	"log/slog"
	"testing"

	"github.com/hireloop/hrms-ui-api/config"
	domainauth "github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

type memorySessionStore struct {
	sessions map[string]*domainauth.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: map[string]*domainauth.Session{}}
}

func (m *memorySessionStore) Save(_ context.Context, s *domainauth.Session) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *memorySessionStore) Get(_ context.Context, id string) (*domainauth.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return s, nil
}

func (m *memorySessionStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestBuildAuthServiceReturnsNilWithoutSessions(t *testing.T) {
	logger := discardLogger()

	tests := []struct {
		name string
		auth config.AuthConfig
	}{
		{
			name: "dev auth mode",
			auth: config.AuthConfig{
				Mode:       config.AuthModeMock,
				AdminGroup: "hrms-admins",
				DevAuth: config.DevAuthConfig{
					UserID: "dev",
					Email:  "dev@hireloop.local",
					Groups: []string{"hrms-admins"},
				},
			},
		},
		{
			name: "oauth mode",
			auth: config.AuthConfig{
				Mode:       config.AuthModeOAuth,
				AdminGroup: "hrms-admins",
				OAuth: config.OAuthConfig{
					ClientID:     "client-id",
					ClientSecret: "client-secret",
					DiscoveryURL: "https://issuer.example.com",
					RedirectURL:  "https://app.example.com/auth/callback",
					Scope:        "openid",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AuthConfig{
				Auth:     tt.auth,
				Sessions: nil,
				Logger:   logger,
			}

			if svc := BuildAuthService(cfg); svc != nil {
				t.Fatalf("BuildAuthService() = %v, want nil", svc)
			}
		})
	}
}

func TestBuildAuthServiceDevMode(t *testing.T) {
	svc := BuildAuthService(AuthConfig{
		Auth: config.AuthConfig{
			Mode:       config.AuthModeMock,
			AdminGroup: "hrms-admins",
			HRGroup:    "hrms-hr",
			DevAuth: config.DevAuthConfig{
				UserID: "dev",
				Email:  "dev@hireloop.local",
				Groups: []string{"hrms-admins"},
			},
		},
		Sessions: newMemorySessionStore(),
		Logger:   discardLogger(),
	})

	if svc == nil {
		t.Fatal("expected auth service in dev mode")
	}
}

func TestBuildAuthServiceDevModeMissingIdentity(t *testing.T) {
	svc := BuildAuthService(AuthConfig{
		Auth: config.AuthConfig{
			Mode:    config.AuthModeMock,
			DevAuth: config.DevAuthConfig{},
		},
		Sessions: newMemorySessionStore(),
		Logger:   discardLogger(),
	})

	if svc != nil {
		t.Fatal("expected nil auth service when dev identity is incomplete")
	}
}

func TestBuildAuthServiceOAuthMissingCredentials(t *testing.T) {
	svc := BuildAuthService(AuthConfig{
		Auth: config.AuthConfig{
			Mode: config.AuthModeOAuth,
			OAuth: config.OAuthConfig{
				DiscoveryURL: "https://accounts.google.com",
				// no client id or secret
			},
		},
		Sessions: newMemorySessionStore(),
		Logger:   discardLogger(),
	})

	if svc != nil {
		t.Fatal("expected nil auth service when oauth credentials are missing")
	}
}
