// Package backend implements the HTTP client for the remote HRMS action
// API. Every UI operation funnels through Client.Call as a named action
// with a JSON envelope; transport and timeout failures surface as
// structured results rather than errors once retries are exhausted.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/hireloop/hrms-ui-api/internal/domain/action"
	"github.com/hireloop/hrms-ui-api/internal/domain/auth"
	obserrors "github.com/hireloop/hrms-ui-api/internal/observability/errors"
	"github.com/hireloop/hrms-ui-api/internal/observability/statsd"
	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// Options configures a Client. BaseURL and Logger are required.
type Options struct {
	BaseURL       string
	HTTPClient    *http.Client
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	Logger        *slog.Logger
	Metrics       statsd.Sink
}

const (
	defaultTimeout       = 30 * time.Second
	defaultRetryAttempts = 3
	defaultRetryDelay    = time.Second
)

// envelope is the request body for every action call. Token is a
// pointer so an unauthenticated call serializes as "token": null, which
// the backend treats as anonymous.
type envelope struct {
	Action    string  `json:"action"`
	Token     *string `json:"token"`
	Data      any     `json:"data"`
	Timestamp string  `json:"timestamp"`
}

// Client is the single transport between the UI layer and the backend.
// Safe for concurrent use.
type Client struct {
	baseURL       string
	http          *http.Client
	timeout       time.Duration
	retryAttempts int
	retryDelay    time.Duration
	logger        *slog.Logger
	metrics       statsd.Sink

	mu          sync.RWMutex
	tokens      ports.TokenSource
	authHandler ports.AuthFailureHandler

	// test seams
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

var _ ports.Backend = (*Client)(nil)

// NewClient builds a Client from Options, panicking on missing required
// dependencies.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		panic("backend: BaseURL is required")
	}
	if opts.Logger == nil {
		panic("backend: Logger is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	attempts := opts.RetryAttempts
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	return &Client{
		baseURL:       opts.BaseURL,
		http:          httpClient,
		timeout:       timeout,
		retryAttempts: attempts,
		retryDelay:    delay,
		logger:        opts.Logger,
		metrics:       opts.Metrics,
		now:           time.Now,
		sleep:         sleepCtx,
	}
}

// Bind attaches the token source and auth failure handler after
// construction. The session gate depends on the client, so these two
// arrive late to break the cycle. Either may be nil.
func (c *Client) Bind(tokens ports.TokenSource, handler ports.AuthFailureHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = tokens
	c.authHandler = handler
}

// Call dispatches an action with linear-backoff retries. Attempt n
// waits n*RetryDelay before running, and every attempt gets its own
// timeout. The returned error is non-nil only for invalid actions and
// contexts canceled before the first attempt; all other failures come
// back as a Result with Success=false and a failure code.
func (c *Client) Call(ctx context.Context, act action.Action, data any, opts *ports.CallOptions) (ports.Result, error) {
	if !act.Valid() {
		return ports.Result{}, fmt.Errorf("backend: unknown action %q", act)
	}
	if err := ctx.Err(); err != nil {
		return ports.Result{}, fmt.Errorf("backend: call %s: %w", act, err)
	}

	attempts := c.retryAttempts
	timeout := c.timeout
	if opts != nil {
		if opts.RetryAttempts > 0 {
			attempts = opts.RetryAttempts
		}
		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
	}

	start := c.now()
	var last ports.Result
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := c.sleep(ctx, time.Duration(attempt-1)*c.retryDelay); err != nil {
				break
			}
		}

		res, retryable := c.attempt(ctx, act, data, timeout)
		last = res

		if res.AuthFailed() {
			c.notifyAuthFailure(ctx, res.Code)
			break
		}
		if res.Success || !retryable {
			break
		}
		c.logger.Debug("action attempt failed",
			"action", act.String(),
			"attempt", attempt,
			"code", res.Code,
		)
	}

	c.emitMetrics(act, last, c.now().Sub(start))
	return last, nil
}

// attempt performs one HTTP round trip. The second return reports
// whether a failure is worth retrying.
func (c *Client) attempt(ctx context.Context, act action.Action, data any, timeout time.Duration) (ports.Result, bool) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(envelope{
		Action:    act.String(),
		Token:     c.resolveToken(ctx),
		Data:      data,
		Timestamp: c.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return failure(ports.CodeUnknownError, fmt.Sprintf("encode request: %v", err)), false
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return failure(ports.CodeUnknownError, fmt.Sprintf("build request: %v", err)), false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransport(err), true
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return classifyTransport(err), true
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Every non-2xx retries; the backend serves transient 4xx from
		// proxies and gateways just like 5xx.
		return failure("HTTP_"+strconv.Itoa(resp.StatusCode), http.StatusText(resp.StatusCode)), true
	}

	res, malformed := normalize(raw)
	// A body that fails to parse retries like any transport fault; a
	// parsed backend refusal is final.
	return res, malformed
}

// normalize folds both observed response shapes into a Result: the
// full {success,data,error,code} envelope, and a bare payload object
// which older endpoints return on success. The second return reports a
// body that could not be parsed at all.
func normalize(raw []byte) (ports.Result, bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return failure(ports.CodeUnknownError, "invalid response body"), true
	}

	if _, ok := probe["success"]; ok {
		var res ports.Result
		if err := json.Unmarshal(raw, &res); err != nil {
			return failure(ports.CodeUnknownError, "invalid response envelope"), true
		}
		return res, false
	}
	return ports.Result{Success: true, Data: raw}, false
}

func classifyTransport(err error) ports.Result {
	var uerr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &uerr) && uerr.Timeout()) {
		return failure(ports.CodeTimeout, "request timed out")
	}
	return failure(ports.CodeNetworkError, obserrors.Classify(err))
}

func failure(code, msg string) ports.Result {
	return ports.Result{Success: false, Error: msg, Code: code}
}

func (c *Client) resolveToken(ctx context.Context) *string {
	if token := auth.TokenFromContext(ctx); token != "" {
		return &token
	}
	c.mu.RLock()
	tokens := c.tokens
	c.mu.RUnlock()
	if tokens != nil {
		if token := tokens.Token(ctx); token != "" {
			return &token
		}
	}
	return nil
}

func (c *Client) notifyAuthFailure(ctx context.Context, code string) {
	c.mu.RLock()
	handler := c.authHandler
	c.mu.RUnlock()
	if handler != nil {
		handler.HandleAuthFailure(ctx, code)
	}
}

func (c *Client) emitMetrics(act action.Action, res ports.Result, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	tags := map[string]string{
		"action": act.String(),
		"result": "success",
	}
	if !res.Success {
		tags["result"] = "failure"
		tags["code"] = res.Code
	}
	c.metrics.Count("action.calls", 1, tags)
	c.metrics.Timing("action.duration", elapsed, tags)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
