package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c := NewClient(Options{
		BaseURL:       url,
		Timeout:       2 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    10 * time.Millisecond,
		Logger:        slog.New(slog.NewTextHandler(testWriter{t}, nil)),
	})
	c.sleep = func(context.Context, time.Duration) error { return nil }
	return c
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

type recordedAuthHandler struct {
	calls atomic.Int32
	code  atomic.Value
}

func (h *recordedAuthHandler) HandleAuthFailure(_ context.Context, code string) {
	h.calls.Add(1)
	h.code.Store(code)
}

func TestCallSuccessEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env envelope
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
		assert.Equal(t, "GET_CANDIDATES", env.Action)
		assert.Nil(t, env.Token)
		w.Write([]byte(`{"success":true,"data":{"candidates":[]}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).Call(context.Background(), action.GetCandidates, nil, nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.JSONEq(t, `{"candidates":[]}`, string(res.Data))
}

func TestCallBareObjectNormalizedAsSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"total":4,"items":[1,2,3,4]}`))
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).Call(context.Background(), action.GetDashboardStats, nil, nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.JSONEq(t, `{"total":4,"items":[1,2,3,4]}`, string(res.Data))
}

func TestCallSendsSessionToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env envelope
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
		require.NotNil(t, env.Token)
		assert.Equal(t, "tok-123", *env.Token)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	ctx := auth.ContextWithSession(context.Background(), &auth.Session{
		ID:        "s1",
		Token:     "tok-123",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	res, err := newTestClient(t, srv.URL).Call(ctx, action.GetUsers, nil, nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestCallRetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).Call(context.Background(), action.GetRequirements, nil, nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.EqualValues(t, 3, attempts.Load())
}

func TestCallTimeoutExhaustsRetries(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		// Drain the body so the server starts its background read and
		// cancels the request context when the client times out.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	res, err := client.Call(context.Background(), action.GetInterviews, nil, &ports.CallOptions{
		Timeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, ports.CodeTimeout, res.Code)
	assert.EqualValues(t, 3, attempts.Load())
}

func TestCallNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse all connections

	res, err := newTestClient(t, srv.URL).Call(context.Background(), action.GetCallLogs, nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, ports.CodeNetworkError, res.Code)
}

func TestCallRetriesClientErrorThenSucceeds(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).Call(context.Background(), action.AddCandidate, nil, nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.EqualValues(t, 3, attempts.Load())
}

func TestCallClientErrorExhaustsRetries(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).Call(context.Background(), action.AddCandidate, nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "HTTP_422", res.Code)
	assert.EqualValues(t, 3, attempts.Load())
}

func TestCallAuthFailureStopsRetriesAndNotifies(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.Write([]byte(`{"success":false,"error":"session expired","code":"TOKEN_EXPIRED"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	handler := &recordedAuthHandler{}
	client.Bind(nil, handler)

	res, err := client.Call(context.Background(), action.GetUsers, nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, ports.CodeTokenExpired, res.Code)
	assert.EqualValues(t, 1, attempts.Load())
	assert.EqualValues(t, 1, handler.calls.Load())
	assert.Equal(t, ports.CodeTokenExpired, handler.code.Load())
}

func TestCallBackendDeclaredFailureNotRetried(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.Write([]byte(`{"success":false,"error":"duplicate mobile number","code":"DUPLICATE"}`))
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).Call(context.Background(), action.AddCandidate, nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "DUPLICATE", res.Code)
	assert.Equal(t, "duplicate mobile number", res.Error)
	assert.EqualValues(t, 1, attempts.Load())
}

func TestCallInvalidAction(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://127.0.0.1:0")
	_, err := client.Call(context.Background(), action.Action("NOT_A_THING"), nil, nil)
	require.Error(t, err)
}

func TestCallCanceledContextBeforeFirstAttempt(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, "http://127.0.0.1:0")
	_, err := client.Call(ctx, action.GetUsers, nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCallRetriesMalformedBodyThenSucceeds(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) < 3 {
			w.Write([]byte(`{"success":tru`)) // truncated mid-body
			return
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).Call(context.Background(), action.GetUsers, nil, nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.EqualValues(t, 3, attempts.Load())
}

func TestCallInvalidResponseBodyExhaustsRetries(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	res, err := newTestClient(t, srv.URL).Call(context.Background(), action.GetUsers, nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, ports.CodeUnknownError, res.Code)
	assert.EqualValues(t, 3, attempts.Load())
}
