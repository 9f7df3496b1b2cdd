package httpx

import (
	"log/slog"
	"net/http"

	"github.com/hireloop/hrms-ui-api/internal/ports"
	"github.com/hireloop/hrms-ui-api/internal/router"
	"github.com/hireloop/hrms-ui-api/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Auth         *service.AuthService
	Backend      ports.Backend
	Nav          *router.Router
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP handler tree.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	actionHandlers := &ActionHandlers{Backend: services.Backend, Logger: services.Logger}
	appHandlers := &AppHandlers{Nav: services.Nav}

	registerAuthRoutes(mux, authHandlers)
	registerActionRoutes(mux, actionHandlers)
	registerAppRoutes(mux, appHandlers)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	handler := WithSession(services.Auth)(mux)
	handler = Logging(services.Logger)(handler)
	return Recover(services.Logger)(handler)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/me", h.Me)
}

func registerActionRoutes(mux *http.ServeMux, h *ActionHandlers) {
	// Public actions are gated inside the handler, so no RequireAuth here.
	mux.HandleFunc("POST /api/action", h.Dispatch)
}

func registerAppRoutes(mux *http.ServeMux, h *AppHandlers) {
	requireAuth := RequireAuth()
	mux.Handle("GET /app/resolve", http.HandlerFunc(h.Resolve))
	mux.Handle("POST /app/back", requireAuth(http.HandlerFunc(h.Back)))
	mux.Handle("GET /app/current", requireAuth(http.HandlerFunc(h.Current)))
}
