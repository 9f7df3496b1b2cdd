package httpx

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/hireloop/hrms-ui-api/internal/router"
)

// AppHandlers exposes client-side navigation over HTTP: the browser
// asks where a path leads, and guards, redirects and page
// initializers run server-side.
type AppHandlers struct {
	Nav *router.Router
}

// Resolve navigates to the requested path and reports the outcome.
// GET /app/resolve?path=<path>.
func (h *AppHandlers) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_path",
			Err:     errors.New("path parameter is required"),
		})
		return
	}

	var opts *router.NavigateOptions
	if rawQuery := r.URL.Query().Get("query"); rawQuery != "" {
		if q, err := url.ParseQuery(rawQuery); err == nil {
			opts = &router.NavigateOptions{Query: q}
		}
	}

	nav, err := h.Nav.Navigate(r.Context(), path, opts)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "navigation_failed",
			Err:     err,
		})
		return
	}

	writeNavigation(w, nav)
}

// Back pops the navigation history.
// POST /app/back.
func (h *AppHandlers) Back(w http.ResponseWriter, r *http.Request) {
	nav, err := h.Nav.Back(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "navigation_failed",
			Err:     err,
		})
		return
	}
	writeNavigation(w, nav)
}

// Current reports the route the client is on.
// GET /app/current.
func (h *AppHandlers) Current(w http.ResponseWriter, _ *http.Request) {
	nav, ok := h.Nav.CurrentRoute()
	if !ok {
		WriteJSON(w, http.StatusOK, map[string]any{"resolved": false})
		return
	}
	writeNavigation(w, nav)
}

func writeNavigation(w http.ResponseWriter, nav *router.Navigation) {
	body := map[string]any{
		"resolved":   true,
		"path":       nav.Path,
		"pattern":    nav.Route.Pattern,
		"title":      nav.Title(),
		"params":     nav.Params,
		"query":      nav.Query,
		"redirected": nav.Redirected,
	}
	if nav.Notice != nil {
		body["notice"] = map[string]string{
			"level":   nav.Notice.Level,
			"message": nav.Notice.Message,
		}
	}
	WriteJSON(w, http.StatusOK, body)
}
