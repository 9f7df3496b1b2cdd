package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	domainauth "github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.AuthProvider
	Sessions ports.SessionStore
	Roles    ports.RoleMapper
	Backend  ports.Backend
	Logger   *slog.Logger

	// SessionDuration bounds how long a browser session lives locally,
	// independent of the backend token's own expiry. Defaults to 24h.
	SessionDuration time.Duration
}

// AuthService is the session gate: it runs the login flow against the
// identity provider and the backend, owns session persistence, and
// answers the authorization questions the router and HTTP layer ask.
type AuthService struct {
	provider ports.AuthProvider
	sessions ports.SessionStore
	roles    ports.RoleMapper
	backend  ports.Backend
	logger   *slog.Logger
	duration time.Duration

	now func() time.Time
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs an AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	duration := opts.SessionDuration
	if duration <= 0 {
		duration = 24 * time.Hour
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		provider: opts.Provider,
		sessions: opts.Sessions,
		roles:    opts.Roles,
		backend:  opts.Backend,
		logger:   logger,
		duration: duration,
		now:      time.Now,
	}
}

// BeginLoginResult carries what the login handler needs to redirect the
// browser to the provider.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates the provider flow.
func (s *AuthService) BeginLogin(ctx context.Context) (*BeginLoginResult, error) {
	authURL, state, nonce, err := s.provider.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}
	return &BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteLoginInput groups parameters for completing a login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// loginPayload is the AUTH_LOGIN request body: the provider credential
// is passed through opaquely.
type loginPayload struct {
	Credential string `json:"credential"`
}

// loginResponse is the backend's answer to AUTH_LOGIN.
type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Email       string   `json:"email"`
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
	} `json:"user"`
}

// CompleteLogin exchanges the authorization code for an identity,
// forwards the provider credential to the backend's AUTH_LOGIN, and
// persists the resulting session. The backend's user record wins over
// the group mapping; the static permission table fills in when the
// backend sends a role without explicit permissions.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*domainauth.Session, error) {
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, input.Code, input.State, input.Nonce)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	res, err := s.backend.Call(ctx, action.AuthLogin, loginPayload{Credential: identity.Credential}, nil)
	if err != nil {
		return nil, fmt.Errorf("backend login: %w", err)
	}
	if !res.Success {
		return nil, fmt.Errorf("backend login rejected: %s (%s)", res.Error, res.Code)
	}

	var login loginResponse
	if err := res.Decode(&login); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if login.Token == "" {
		return nil, errors.New("backend login returned no token")
	}

	snapshot := s.buildSnapshot(identity, login)
	session := &domainauth.Session{
		ID:        uuid.NewString(),
		Token:     login.Token,
		User:      snapshot,
		ExpiresAt: s.now().Add(s.duration),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("login completed", "user", snapshot.ID, "role", snapshot.Role)
	return session, nil
}

func (s *AuthService) buildSnapshot(identity domainauth.Identity, login loginResponse) domainauth.UserSnapshot {
	role := domainauth.Role(login.User.Role)
	if !role.Valid() {
		if mapped, ok := s.roles.Map(identity.Groups); ok {
			role = mapped
		}
	}

	perms := make([]domainauth.Permission, 0, len(login.User.Permissions))
	for _, p := range login.User.Permissions {
		perms = append(perms, domainauth.Permission(p))
	}
	if len(perms) == 0 {
		perms = domainauth.RolePermissions(role)
	}

	name := login.User.Name
	if name == "" {
		name = identity.FirstName + " " + identity.LastName
	}
	email := login.User.Email
	if email == "" {
		email = identity.Email
	}
	id := login.User.ID
	if id == "" {
		id = identity.UserID
	}

	return domainauth.UserSnapshot{
		ID:          id,
		Name:        name,
		Email:       email,
		Role:        role,
		Permissions: perms,
	}
}

// GetSession retrieves a session by ID, deleting it eagerly when
// expired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}
	return session, nil
}

// IsAuthenticated reports whether the request context carries a live
// session.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	sess := domainauth.SessionFromContext(ctx)
	return sess != nil && !sess.Expired(s.now())
}

// CurrentUser returns the snapshot for the context's session.
func (s *AuthService) CurrentUser(ctx context.Context) (domainauth.UserSnapshot, bool) {
	sess := domainauth.SessionFromContext(ctx)
	if sess == nil || sess.Expired(s.now()) {
		return domainauth.UserSnapshot{}, false
	}
	return sess.User, true
}

// Token returns the backend credential for the context's session,
// implementing the backend client's token source.
func (s *AuthService) Token(ctx context.Context) string {
	sess := domainauth.SessionFromContext(ctx)
	if sess == nil {
		return ""
	}
	return sess.Token
}

// validateResponse is the backend's answer to AUTH_VALIDATE.
type validateResponse struct {
	Valid bool `json:"valid"`
	User  struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Email       string   `json:"email"`
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
	} `json:"user"`
}

// Validate re-checks the context's session against the backend and
// refreshes the cached user snapshot. A definitive negative answer
// tears the session down; transport failures leave it alone.
func (s *AuthService) Validate(ctx context.Context) (bool, error) {
	sess := domainauth.SessionFromContext(ctx)
	if sess == nil {
		return false, nil
	}

	res, err := s.backend.Call(ctx, action.AuthValidate, nil, nil)
	if err != nil {
		return false, fmt.Errorf("backend validate: %w", err)
	}
	if !res.Success {
		if res.AuthFailed() {
			s.teardown(ctx, sess.ID)
			return false, nil
		}
		// Transport or backend trouble, keep the session.
		return true, nil
	}

	var v validateResponse
	if err := res.Decode(&v); err != nil {
		return false, fmt.Errorf("decode validate response: %w", err)
	}
	if !v.Valid {
		s.teardown(ctx, sess.ID)
		return false, nil
	}

	if v.User.ID != "" {
		role := domainauth.Role(v.User.Role)
		if !role.Valid() {
			role = sess.User.Role
		}
		perms := make([]domainauth.Permission, 0, len(v.User.Permissions))
		for _, p := range v.User.Permissions {
			perms = append(perms, domainauth.Permission(p))
		}
		if len(perms) == 0 {
			perms = sess.User.Permissions
		}
		sess.User = domainauth.UserSnapshot{
			ID:          v.User.ID,
			Name:        v.User.Name,
			Email:       v.User.Email,
			Role:        role,
			Permissions: perms,
		}
		if err := s.sessions.Save(ctx, sess); err != nil {
			s.logger.Warn("refresh session snapshot failed", "error", err)
		}
	}
	return true, nil
}

// Logout tells the backend (best effort) and removes the local session.
func (s *AuthService) Logout(ctx context.Context) error {
	sess := domainauth.SessionFromContext(ctx)
	if sess == nil {
		return nil
	}

	if _, err := s.backend.Call(ctx, action.AuthLogout, nil, &ports.CallOptions{RetryAttempts: 1}); err != nil {
		s.logger.Warn("backend logout failed", "error", err)
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// HandleAuthFailure is the backend client's side channel: any response
// carrying an auth failure code tears down the local session so the
// next navigation lands on the login page.
func (s *AuthService) HandleAuthFailure(ctx context.Context, code string) {
	sess := domainauth.SessionFromContext(ctx)
	if sess == nil {
		return
	}
	s.logger.Warn("auth failure from backend, clearing session", "code", code, "session", sess.ID)
	s.teardown(ctx, sess.ID)
}

func (s *AuthService) teardown(ctx context.Context, sessionID string) {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("session teardown failed", "session", sessionID, "error", err)
	}
}
