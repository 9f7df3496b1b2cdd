package ports

// Package ports defines interfaces (hexagonal ports) for the HRMS UI
// layer. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
)

// Failure codes produced locally by the backend client. Backend-declared
// codes (including AUTH_ERROR / TOKEN_EXPIRED) pass through opaquely.
const (
	CodeTimeout      = "TIMEOUT"
	CodeNetworkError = "NETWORK_ERROR"
	CodeAuthError    = "AUTH_ERROR"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeUnknownError = "UNKNOWN_ERROR"
)

// Result is the canonical outcome of a backend action call. Both wire
// shapes (the {success,data,error,code} envelope and the bare payload
// variant) are normalized into it at the decode boundary.
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
}

// AuthFailed reports whether the result carries an auth-failure code.
func (r Result) AuthFailed() bool {
	return r.Code == CodeAuthError || r.Code == CodeTokenExpired
}

// Decode unmarshals the result payload into v.
func (r Result) Decode(v any) error {
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

// CallOptions override per-call retry and timeout behavior. Zero values
// mean "use the client's configured defaults".
type CallOptions struct {
	RetryAttempts int
	Timeout       time.Duration
}

// Backend dispatches named actions to the remote HRMS backend.
//
// Call resolves with a structured Result for every transport, timeout,
// or backend failure once retries are exhausted; the error return is
// reserved for caller bugs (invalid action) and contexts canceled before
// the first attempt. Implementations must never hang past
// attempts*(timeout+backoff).
type Backend interface {
	Call(ctx context.Context, act action.Action, data any, opts *CallOptions) (Result, error)
}

// TokenSource supplies the bearer credential attached to action
// envelopes when the request context carries no session of its own.
type TokenSource interface {
	Token(ctx context.Context) string
}

// AuthFailureHandler is notified out-of-band when any backend response
// carries an auth-failure code, before the result reaches the caller.
// This is the one deliberate side channel out of an otherwise pure
// request function; the session gate uses it to tear down local state.
type AuthFailureHandler interface {
	HandleAuthFailure(ctx context.Context, code string)
}
