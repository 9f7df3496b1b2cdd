package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	domainauth "github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// funcBackend adapts a function to ports.Backend.
type funcBackend func(ctx context.Context, act action.Action, data any, opts *ports.CallOptions) (ports.Result, error)

func (f funcBackend) Call(ctx context.Context, act action.Action, data any, opts *ports.CallOptions) (ports.Result, error) {
	return f(ctx, act, data, opts)
}

func newActionHandlers(backend ports.Backend) *ActionHandlers {
	return &ActionHandlers{Backend: backend, Logger: slog.New(slog.DiscardHandler)}
}

func dispatchRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/action", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestActionDispatch_Success(t *testing.T) {
	var gotAction action.Action
	var gotData any
	handlers := newActionHandlers(funcBackend(func(_ context.Context, act action.Action, data any, _ *ports.CallOptions) (ports.Result, error) {
		gotAction = act
		gotData = data
		return ports.Result{Success: true, Data: json.RawMessage(`{"candidates":[]}`)}, nil
	}))

	req := dispatchRequest(`{"action":"GET_CANDIDATES","data":{"status":"NEW"}}`)
	req = req.WithContext(domainauth.ContextWithSession(req.Context(), testSession("sess-1")))
	w := httptest.NewRecorder()

	handlers.Dispatch(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, action.GetCandidates, gotAction)
	assert.JSONEq(t, `{"status":"NEW"}`, string(gotData.(json.RawMessage)))
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestActionDispatch_OwnerAndOnboardingActionsAccepted(t *testing.T) {
	var gotAction action.Action
	handlers := newActionHandlers(funcBackend(func(_ context.Context, act action.Action, _ any, _ *ports.CallOptions) (ports.Result, error) {
		gotAction = act
		return ports.Result{Success: true}, nil
	}))

	for _, name := range []string{"GET_OWNER_QUEUE", "GET_CANDIDATE_CV", "GET_SELECTED_CANDIDATES", "POSTPONE_JOINING", "DOWNLOAD_DOCUMENT"} {
		req := dispatchRequest(`{"action":"` + name + `","data":{}}`)
		req = req.WithContext(domainauth.ContextWithSession(req.Context(), testSession("sess-1")))
		w := httptest.NewRecorder()

		handlers.Dispatch(w, req)

		require.Equal(t, http.StatusOK, w.Code, "action %s", name)
		assert.Equal(t, action.Action(name), gotAction)
		assert.NotContains(t, w.Body.String(), "unknown_action")
	}
}

func TestActionDispatch_UnknownAction(t *testing.T) {
	handlers := newActionHandlers(funcBackend(func(context.Context, action.Action, any, *ports.CallOptions) (ports.Result, error) {
		t.Fatal("backend must not be called")
		return ports.Result{}, nil
	}))

	w := httptest.NewRecorder()
	handlers.Dispatch(w, dispatchRequest(`{"action":"DROP_TABLES"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown_action")
}

func TestActionDispatch_AnonymousRejectedForProtectedAction(t *testing.T) {
	handlers := newActionHandlers(funcBackend(func(context.Context, action.Action, any, *ports.CallOptions) (ports.Result, error) {
		t.Fatal("backend must not be called")
		return ports.Result{}, nil
	}))

	w := httptest.NewRecorder()
	handlers.Dispatch(w, dispatchRequest(`{"action":"GET_CANDIDATES"}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication_required")
}

func TestActionDispatch_AnonymousAllowedForPublicAction(t *testing.T) {
	handlers := newActionHandlers(funcBackend(func(_ context.Context, act action.Action, _ any, _ *ports.CallOptions) (ports.Result, error) {
		assert.Equal(t, action.GetTestQuestions, act)
		return ports.Result{Success: true}, nil
	}))

	w := httptest.NewRecorder()
	handlers.Dispatch(w, dispatchRequest(`{"action":"GET_TEST_QUESTIONS","data":{"testToken":"tok-1"}}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestActionDispatch_BackendFailurePassedThrough(t *testing.T) {
	handlers := newActionHandlers(funcBackend(func(context.Context, action.Action, any, *ports.CallOptions) (ports.Result, error) {
		return ports.Result{Success: false, Error: "duplicate mobile number", Code: "DUPLICATE"}, nil
	}))

	req := dispatchRequest(`{"action":"ADD_CANDIDATE","data":{"name":"A"}}`)
	req = req.WithContext(domainauth.ContextWithSession(req.Context(), testSession("sess-1")))
	w := httptest.NewRecorder()

	handlers.Dispatch(w, req)

	// Backend-declared failures are still HTTP 200: the envelope carries them.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "DUPLICATE")
}

func TestActionDispatch_TransportError(t *testing.T) {
	handlers := newActionHandlers(funcBackend(func(context.Context, action.Action, any, *ports.CallOptions) (ports.Result, error) {
		return ports.Result{}, errors.New("context canceled")
	}))

	req := dispatchRequest(`{"action":"GET_CANDIDATES"}`)
	req = req.WithContext(domainauth.ContextWithSession(req.Context(), testSession("sess-1")))
	w := httptest.NewRecorder()

	handlers.Dispatch(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "backend_unavailable")
}

func TestActionDispatch_InvalidBody(t *testing.T) {
	handlers := newActionHandlers(funcBackend(func(context.Context, action.Action, any, *ports.CallOptions) (ports.Result, error) {
		t.Fatal("backend must not be called")
		return ports.Result{}, nil
	}))

	w := httptest.NewRecorder()
	handlers.Dispatch(w, dispatchRequest(`{not json`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_json")
}
