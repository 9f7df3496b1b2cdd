package bootstrap

import (
	"log/slog"

	"github.com/hireloop/hrms-ui-api/config"
	"github.com/hireloop/hrms-ui-api/internal/adapters/authroles"
	"github.com/hireloop/hrms-ui-api/internal/adapters/devauth"
	"github.com/hireloop/hrms-ui-api/internal/adapters/oidc"
	"github.com/hireloop/hrms-ui-api/internal/ports"
	"github.com/hireloop/hrms-ui-api/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth     config.AuthConfig
	Sessions ports.SessionStore
	Backend  ports.Backend
	Logger   *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil if auth is not configured or configuration is invalid.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.Sessions == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: session store not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	// Role mapper is shared by both modes
	roleMapper := authroles.StaticRoleMapper{
		AdminGroup: cfg.Auth.AdminGroup,
		OwnerGroup: cfg.Auth.OwnerGroup,
		HRGroup:    cfg.Auth.HRGroup,
		EAGroup:    cfg.Auth.EAGroup,
	}

	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		return buildDevAuthService(cfg, roleMapper)

	case config.AuthModeOAuth:
		return buildOAuthService(cfg, roleMapper)

	default:
		return nil
	}
}

func buildDevAuthService(cfg AuthConfig, roleMapper authroles.StaticRoleMapper) *service.AuthService {
	// Explicitly enabled dev auth mode; build a local provider.
	prov, err := devauth.NewProvider(devauth.Config{
		UserID:    cfg.Auth.DevAuth.UserID,
		Email:     cfg.Auth.DevAuth.Email,
		FirstName: cfg.Auth.DevAuth.FirstName,
		LastName:  cfg.Auth.DevAuth.LastName,
		Groups:    cfg.Auth.DevAuth.Groups,
		// session duration defaults inside provider
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create dev auth provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider:        prov,
		Sessions:        cfg.Sessions,
		Roles:           roleMapper,
		Backend:         cfg.Backend,
		Logger:          cfg.Logger,
		SessionDuration: cfg.Auth.SessionDuration,
	})
}

func buildOAuthService(cfg AuthConfig, roleMapper authroles.StaticRoleMapper) *service.AuthService {
	// Only enable when fully configured
	oauth := cfg.Auth.OAuth
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeOAuth selected but required config missing; auth disabled",
				"discovery_url_empty", oauth.DiscoveryURL == "",
				"client_id_empty", oauth.ClientID == "",
				"client_secret_empty", oauth.ClientSecret == "",
			)
		}
		return nil
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
		LogoutURL:    oauth.LogoutURL,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider:        prov,
		Sessions:        cfg.Sessions,
		Roles:           roleMapper,
		Backend:         cfg.Backend,
		Logger:          cfg.Logger,
		SessionDuration: cfg.Auth.SessionDuration,
	})
}
