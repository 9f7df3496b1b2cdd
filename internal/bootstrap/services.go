package bootstrap

import (
	"context"
	"log/slog"

	"github.com/hireloop/hrms-ui-api/config"
	"github.com/hireloop/hrms-ui-api/internal/adapters/backend"
	"github.com/hireloop/hrms-ui-api/internal/observability/statsd"
	"github.com/hireloop/hrms-ui-api/internal/ports"
	"github.com/hireloop/hrms-ui-api/internal/router"
	"github.com/hireloop/hrms-ui-api/internal/service"
	"github.com/hireloop/hrms-ui-api/internal/state"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth         *service.AuthService
	Requirements *service.RequirementService
	Candidates   *service.CandidateService
	Calls        *service.CallService
	Interviews   *service.InterviewService
	Assessments  *service.AssessmentService
	Admin        *service.AdminService
	Owner        *service.OwnerService
	Onboarding   *service.OnboardingService
	Users        *service.UserService
	Dashboard    *service.DashboardService

	Backend       ports.Backend
	State         *state.Store
	Nav           *router.Router
	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config  *config.AppConfig
	Storage *Storage
	Logger  *slog.Logger
}

// buildObservability configures the metrics adapter.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	obsLogger := logger
	if obsLogger == nil {
		obsLogger = slog.Default()
	}

	var metricsSink *statsd.Client
	if cfg.Metrics.IsEnabled() {
		client, err := statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  cfg.Metrics.Prefix,
			Logger:  obsLogger,
		})
		if err != nil {
			obsLogger.Error("failed to initialise statsd client", "error", err)
		} else {
			metricsSink = client
		}
	}

	return ObservabilityContainer{
		MetricsSink:   metricsSink,
		MetricsConfig: cfg.Metrics,
	}
}

func buildBackendClient(cfg config.BackendConfig, logger *slog.Logger, metrics statsd.Sink) *backend.Client {
	return backend.NewClient(backend.Options{
		BaseURL:       cfg.URL,
		Timeout:       cfg.Timeout,
		RetryAttempts: cfg.RetryAttempts,
		RetryDelay:    cfg.RetryDelay,
		Logger:        logger,
		Metrics:       metrics,
	})
}

// NewServices wires all application services. The returned container's
// Auth field is nil when authentication is misconfigured; callers decide
// whether that is fatal.
func NewServices(ctx context.Context, deps *ServiceDeps) ServiceContainer {
	if deps == nil || deps.Config == nil || deps.Storage == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	observability := buildObservability(logger, cfg.Observability)

	backendClient := buildBackendClient(cfg.Backend, logger, observability.MetricsSink)

	authService := BuildAuthService(AuthConfig{
		Auth:     cfg.Auth,
		Sessions: deps.Storage.Sessions,
		Backend:  backendClient,
		Logger:   logger,
	})
	if authService != nil {
		// The session gate supplies tokens and reacts to auth failures;
		// it also depends on the client, so these arrive after construction.
		backendClient.Bind(authService, authService)
	}

	stateStore := state.NewStore(state.Options{
		Logger:    logger,
		Persister: deps.Storage.State,
	})
	if err := stateStore.Load(ctx); err != nil {
		// Losing persisted UI preferences is not worth refusing to start.
		logger.WarnContext(ctx, "failed to load persisted state", "error", err)
	}

	container := ServiceContainer{
		Auth:         authService,
		Requirements: service.NewRequirementService(backendClient),
		Candidates:   service.NewCandidateService(backendClient),
		Calls:        service.NewCallService(backendClient),
		Interviews:   service.NewInterviewService(backendClient),
		Assessments:  service.NewAssessmentService(backendClient),
		Admin:        service.NewAdminService(backendClient),
		Owner:        service.NewOwnerService(backendClient),
		Onboarding:   service.NewOnboardingService(backendClient),
		Users:        service.NewUserService(backendClient),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Backend:  backendClient,
			Cache:    deps.Storage.Cache,
			Logger:   logger,
			CacheTTL: cfg.Store.CacheTTL,
		}),
		Backend:       backendClient,
		State:         stateStore,
		Observability: observability,
	}

	if authService != nil {
		container.Nav = buildNavigator(navigatorDeps{
			Gate:     authService,
			State:    stateStore,
			Logger:   logger,
			Services: &container,
		})
	}

	return container
}
