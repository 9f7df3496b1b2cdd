// Package router implements route resolution and navigation for the
// HRMS UI: pattern matching with exact-over-parameterized precedence,
// auth and permission guards, and a bounded navigation history.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/state"
)

// Phase is the router's position in its navigation state machine.
type Phase string

const (
	PhaseIdle         Phase = "IDLE"
	PhaseResolving    Phase = "RESOLVING"
	PhaseAuthorized   Phase = "AUTHORIZED"
	PhaseRendering    Phase = "RENDERING"
	PhaseUnauthorized Phase = "UNAUTHORIZED"
	PhaseRedirecting  Phase = "REDIRECTING"
)

// Default redirect targets for guard failures.
const (
	LoginPath = "/login"
	HomePath  = "/dashboard"

	NotFoundPattern = "/404"

	maxHistory   = 50
	maxRedirects = 5
)

// InitFunc loads whatever a page needs before it renders, typically by
// fetching through a feature service into the state store.
type InitFunc func(ctx context.Context, nav *Navigation) error

// Route describes one registered route.
type Route struct {
	Pattern      string
	Title        string
	RequiresAuth bool
	Roles        []auth.Role
	Permissions  []auth.Permission
	Init         InitFunc
}

// Notice is the single user-facing message a navigation may carry, for
// guard denials and initializer failures.
type Notice struct {
	Level   string // "error" or "warning"
	Message string
}

// Navigation is the outcome of one Navigate call.
type Navigation struct {
	Path       string
	Route      Route
	Params     map[string]string
	Query      url.Values
	Redirected bool
	Notice     *Notice
}

// Title returns the resolved route's title.
func (n *Navigation) Title() string { return n.Route.Title }

// Gate answers the identity questions the guards need. The auth service
// implements it.
type Gate interface {
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) (auth.UserSnapshot, bool)
}

// NavigateOptions modify a single navigation.
type NavigateOptions struct {
	Replace bool
	Query   url.Values
}

// Options configures a Router. Logger, Gate and State are required.
type Options struct {
	Logger *slog.Logger
	Gate   Gate
	State  *state.Store
}

// Router resolves paths to routes and runs the guard pipeline. Safe for
// concurrent use.
type Router struct {
	logger *slog.Logger
	gate   Gate
	state  *state.Store

	mu       sync.Mutex
	routes   []Route
	notFound Route
	phase    Phase
	current  *Navigation
	history  []string
}

// New builds an empty Router with the standard NotFound fallback.
func New(opts Options) *Router {
	if opts.Logger == nil {
		panic("router: Logger is required")
	}
	if opts.Gate == nil {
		panic("router: Gate is required")
	}
	if opts.State == nil {
		panic("router: State is required")
	}
	return &Router{
		logger: opts.Logger,
		gate:   opts.Gate,
		state:  opts.State,
		notFound: Route{
			Pattern: NotFoundPattern,
			Title:   "Page Not Found",
		},
		phase: PhaseIdle,
	}
}

// Register appends a route. Registration order is the tie-break among
// parameterized patterns, so register more specific literals first.
func (r *Router) Register(routes ...Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, routes...)
}

// SetNotFound replaces the fallback route.
func (r *Router) SetNotFound(route Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFound = route
}

// Resolve matches a path against registered patterns. An exact string
// match beats any parameterized match; among parameterized patterns the
// first registered wins. The fallback NotFound route matches anything.
func (r *Router) Resolve(path string) (Route, map[string]string) {
	path = normalizePath(path)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, route := range r.routes {
		if route.Pattern == path {
			return route, map[string]string{}
		}
	}

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for _, route := range r.routes {
		if params, ok := matchPattern(route.Pattern, segments); ok {
			return route, params
		}
	}
	return r.notFound, map[string]string{}
}

// Navigate runs the full pipeline for a path: resolve, guard, record,
// init. Guard failures redirect (login when unauthenticated, home
// otherwise) and the returned Navigation carries exactly one Notice
// describing the first denial. Initializer errors and panics are
// contained and reported the same way.
func (r *Router) Navigate(ctx context.Context, path string, opts *NavigateOptions) (*Navigation, error) {
	if opts == nil {
		opts = &NavigateOptions{}
	}

	var notice *Notice
	redirected := false

	for hop := 0; hop < maxRedirects; hop++ {
		r.setPhase(PhaseResolving)

		cleanPath, query := splitQuery(path)
		if opts.Query != nil {
			query = opts.Query
		}

		route, params := r.Resolve(cleanPath)

		if target, denial := r.guard(ctx, route); denial != nil {
			r.setPhase(PhaseUnauthorized)
			if notice == nil {
				notice = denial
			}
			r.setPhase(PhaseRedirecting)
			path = target
			opts = &NavigateOptions{Replace: true}
			redirected = true
			continue
		}

		r.setPhase(PhaseAuthorized)

		nav := &Navigation{
			Path:       normalizePath(cleanPath),
			Route:      route,
			Params:     params,
			Query:      query,
			Redirected: redirected,
			Notice:     notice,
		}
		r.record(nav, opts.Replace)

		r.setPhase(PhaseRendering)
		if route.Init != nil {
			if err := r.runInit(ctx, route, nav); err != nil {
				r.logger.Error("route init failed", "path", nav.Path, "error", err)
				if nav.Notice == nil {
					nav.Notice = &Notice{Level: "error", Message: "Failed to load page"}
				}
			}
		}
		r.setPhase(PhaseIdle)
		return nav, nil
	}

	r.setPhase(PhaseIdle)
	return nil, fmt.Errorf("router: redirect loop navigating to %q", path)
}

// Back navigates to the previous history entry, or home when there is
// none.
func (r *Router) Back(ctx context.Context) (*Navigation, error) {
	r.mu.Lock()
	target := HomePath
	if len(r.history) >= 2 {
		r.history = r.history[:len(r.history)-1]
		target = r.history[len(r.history)-1]
	}
	r.mu.Unlock()

	return r.Navigate(ctx, target, &NavigateOptions{Replace: true})
}

// CurrentRoute returns the most recent successful navigation.
func (r *Router) CurrentRoute() (*Navigation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return nil, false
	}
	return r.current, true
}

// Phase returns the router's current state-machine phase.
func (r *Router) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// History returns a copy of the navigation history, oldest first.
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

// guard applies the check order auth, then roles (any-of), then
// permissions (any-of). It returns the redirect target and the denial
// notice, or ("", nil) when access is allowed.
func (r *Router) guard(ctx context.Context, route Route) (string, *Notice) {
	if !route.RequiresAuth {
		return "", nil
	}
	if !r.gate.IsAuthenticated(ctx) {
		return LoginPath, &Notice{Level: "warning", Message: "Please sign in to continue"}
	}

	user, ok := r.gate.CurrentUser(ctx)
	if !ok {
		return LoginPath, &Notice{Level: "warning", Message: "Please sign in to continue"}
	}

	if len(route.Roles) > 0 && !user.HasAnyRole(route.Roles...) {
		return HomePath, &Notice{Level: "error", Message: "You do not have access to that page"}
	}
	if len(route.Permissions) > 0 && !user.HasAnyPermission(route.Permissions...) {
		return HomePath, &Notice{Level: "error", Message: "You do not have permission to view that page"}
	}
	return "", nil
}

func (r *Router) runInit(ctx context.Context, route Route, nav *Navigation) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("init panic: %v", rec)
		}
	}()
	return route.Init(ctx, nav)
}

// record stores the navigation as current page state and appends it to
// the bounded history.
func (r *Router) record(nav *Navigation, replace bool) {
	r.mu.Lock()
	r.current = nav
	if replace && len(r.history) > 0 {
		r.history[len(r.history)-1] = nav.Path
	} else {
		r.history = append(r.history, nav.Path)
		if len(r.history) > maxHistory {
			r.history = r.history[len(r.history)-maxHistory:]
		}
	}
	r.mu.Unlock()

	r.state.Set("currentPage", map[string]any{
		"path":  nav.Path,
		"title": nav.Route.Title,
	})
}

func (r *Router) setPhase(p Phase) {
	r.mu.Lock()
	r.phase = p
	r.mu.Unlock()
}

// matchPattern matches pre-split path segments against a parameterized
// pattern. Segment counts must be equal; ":name" segments capture, and
// literal segments compare exactly.
func matchPattern(pattern string, segments []string) (map[string]string, bool) {
	patSegments := strings.Split(strings.TrimPrefix(normalizePath(pattern), "/"), "/")
	if len(patSegments) != len(segments) {
		return nil, false
	}

	params := map[string]string{}
	for i, pat := range patSegments {
		if strings.HasPrefix(pat, ":") {
			params[strings.TrimPrefix(pat, ":")] = segments[i]
			continue
		}
		if pat != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func normalizePath(path string) string {
	path = strings.TrimPrefix(strings.TrimSpace(path), "#")
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func splitQuery(path string) (string, url.Values) {
	clean, rawQuery, found := strings.Cut(path, "?")
	if !found {
		return path, url.Values{}
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return clean, url.Values{}
	}
	return clean, query
}
