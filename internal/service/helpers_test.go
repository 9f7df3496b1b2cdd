package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	domainauth "github.com/hireloop/hrms-ui-api/internal/domain/auth"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// recordedCall is one dispatched action with its encoded payload.
type recordedCall struct {
	Action action.Action
	Data   json.RawMessage
}

// fakeBackend records every dispatched action and answers from a
// per-action response table.
type fakeBackend struct {
	mu        sync.Mutex
	calls     []recordedCall
	responses map[action.Action]ports.Result
	err       error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{responses: map[action.Action]ports.Result{}}
}

func (f *fakeBackend) respond(act action.Action, res ports.Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[act] = res
}

func (f *fakeBackend) respondJSON(act action.Action, data string) {
	f.respond(act, ports.Result{Success: true, Data: json.RawMessage(data)})
}

func (f *fakeBackend) Call(_ context.Context, act action.Action, data any, _ *ports.CallOptions) (ports.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var raw json.RawMessage
	if data != nil {
		raw, _ = json.Marshal(data)
	}
	f.calls = append(f.calls, recordedCall{Action: act, Data: raw})

	if f.err != nil {
		return ports.Result{}, f.err
	}
	if res, ok := f.responses[act]; ok {
		return res, nil
	}
	return ports.Result{Success: true}, nil
}

func (f *fakeBackend) actions() []action.Action {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]action.Action, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Action
	}
	return out
}

func (f *fakeBackend) lastCall(t *testing.T) recordedCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.calls)
	return f.calls[len(f.calls)-1]
}

func (f *fakeBackend) lastPayload(t *testing.T) map[string]any {
	t.Helper()
	call := f.lastCall(t)
	if call.Data == nil {
		return nil
	}
	var payload map[string]any
	require.NoError(t, json.Unmarshal(call.Data, &payload))
	return payload
}

func sessionContext(sess *domainauth.Session) context.Context {
	return domainauth.ContextWithSession(context.Background(), sess)
}

func liveSession() *domainauth.Session {
	return &domainauth.Session{
		ID:    "sess-1",
		Token: "backend-token",
		User: domainauth.UserSnapshot{
			ID:          "u1",
			Name:        "Priya Nair",
			Email:       "priya@hireloop.in",
			Role:        domainauth.RoleHR,
			Permissions: domainauth.RolePermissions(domainauth.RoleHR),
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}
