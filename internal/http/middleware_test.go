package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

type funcSessionLoader func(ctx context.Context, sessionID string) (*domainauth.Session, error)

func (f funcSessionLoader) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	return f(ctx, sessionID)
}

func TestWithSession_LoadsSessionIntoContext(t *testing.T) {
	loader := funcSessionLoader(func(_ context.Context, id string) (*domainauth.Session, error) {
		return testSession(id), nil
	})

	var seen *domainauth.Session
	handler := WithSession(loader)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = domainauth.SessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sess-9"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotNil(t, seen)
	assert.Equal(t, "sess-9", seen.ID)
}

func TestWithSession_InvalidSessionStaysAnonymous(t *testing.T) {
	loader := funcSessionLoader(func(context.Context, string) (*domainauth.Session, error) {
		return nil, ports.ErrNotFound
	})

	var seen *domainauth.Session
	handler := WithSession(loader)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = domainauth.SessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Nil(t, seen)
}

func TestWithSession_NoCookieSkipsLoader(t *testing.T) {
	loader := funcSessionLoader(func(context.Context, string) (*domainauth.Session, error) {
		t.Fatal("loader must not be called without a cookie")
		return nil, nil
	})

	handler := WithSession(loader)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestRequireAuth_RejectsAnonymous(t *testing.T) {
	handler := RequireAuth()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app/current", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication_required")
}

func TestRequireAuth_PassesWithSession(t *testing.T) {
	var ran bool
	handler := RequireAuth()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		ran = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/app/current", nil)
	req = req.WithContext(domainauth.ContextWithSession(req.Context(), testSession("sess-1")))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, ran)
}

func TestRecover_ContainsPanic(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	handler := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogging_PreservesStatus(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}
