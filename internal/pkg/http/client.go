package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/circuitbreaker"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	nrpkg "github.com/piresc/bookingflow/internal/pkg/newrelic"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
)

const (
	DefaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20
)

// ErrNoCredential is returned when a call is attempted without a bearer token
var ErrNoCredential = errors.New("missing credential")

// APIError is a non-2xx answer from the backend. Message holds the
// backend's "error" field verbatim and is empty when it sent none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// AsAPIError unwraps err into an APIError
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Observer receives the outcome of every call. Status is 0 on transport errors.
type Observer func(method string, status int, d time.Duration)

// StateObserver is told when the breaker of a backend host changes state
type StateObserver func(host string, state circuitbreaker.State)

// ErrBackendUnavailable is reported by CheckHealth while a breaker is open
var ErrBackendUnavailable = errors.New("backend circuit breaker is open")

// Client calls the marketplace REST API on behalf of a caller. Calls are
// never retried; a per-host circuit breaker fails fast while the backend
// is down.
type Client struct {
	baseURL  string
	client   *nethttp.Client
	breakers *circuitbreaker.Manager
	observer Observer
	onState  StateObserver
	logger   *logger.ZapLogger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *nethttp.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithObserver installs a hook called after each request
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithStateObserver installs a hook called on breaker state changes
func WithStateObserver(o StateObserver) Option {
	return func(c *Client) { c.onState = o }
}

// NewClient creates a backend client from config
func NewClient(cfg models.BackendConfig, log *logger.ZapLogger, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	breakerCfg := circuitbreaker.DefaultConfig("backend")
	if cfg.BreakerFailures > 0 {
		breakerCfg.FailureThreshold = cfg.BreakerFailures
	}
	if cfg.BreakerTimeout > 0 {
		breakerCfg.Timeout = cfg.BreakerTimeout
	}
	breakerCfg.IsFailure = isServerFailure

	c := &Client{
		baseURL: cfg.BaseURL,
		client:  &nethttp.Client{Timeout: timeout},
		logger:  log,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.onState != nil {
		breakerCfg.OnStateChange = func(host string, _, to circuitbreaker.State) {
			c.onState(host, to)
		}
	}
	c.breakers = circuitbreaker.NewManager(breakerCfg, log)
	return c
}

// isServerFailure counts transport errors and 5xx only; 4xx answers are
// the backend working as intended.
func isServerFailure(err error) bool {
	if err == nil {
		return false
	}
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.StatusCode >= 500
	}
	return !errors.Is(err, context.Canceled)
}

// GetJSON performs a GET and decodes the response into out
func (c *Client) GetJSON(ctx context.Context, rc *requestcontext.RequestContext, endpoint string, out interface{}) error {
	return c.do(ctx, rc, nethttp.MethodGet, endpoint, nil, out)
}

// PostJSON posts body as JSON and decodes the response into out, which may be nil
func (c *Client) PostJSON(ctx context.Context, rc *requestcontext.RequestContext, endpoint string, body, out interface{}) error {
	return c.do(ctx, rc, nethttp.MethodPost, endpoint, body, out)
}

// BreakerStats reports the state of the per-host breakers
func (c *Client) BreakerStats() map[string]circuitbreaker.Stats {
	return c.breakers.GetStats()
}

// CheckHealth fails while any backend host is short-circuited. A
// half-open breaker counts as healthy since it is already probing.
func (c *Client) CheckHealth(context.Context) error {
	for host, s := range c.breakers.GetStats() {
		if s.State == circuitbreaker.StateOpen.String() {
			return fmt.Errorf("%w: %s", ErrBackendUnavailable, host)
		}
	}
	return nil
}

func (c *Client) do(ctx context.Context, rc *requestcontext.RequestContext, method, endpoint string, body, out interface{}) error {
	if rc == nil || rc.Credential == "" {
		return ErrNoCredential
	}

	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+rc.Credential)
	if rc.RequestID != "" {
		req.Header.Set("X-Request-ID", rc.RequestID)
	}

	return c.breakers.Execute(ctx, req.URL.Host, func(ctx context.Context) error {
		start := time.Now()
		resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
			return c.client.Do(req)
		})
		if err != nil {
			c.observe(method, 0, time.Since(start))
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			c.logger.Debug("Backend request failed",
				logger.String("method", method),
				logger.String("url", url),
				logger.String("request_id", rc.RequestID),
				logger.Err(err))
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		c.observe(method, resp.StatusCode, time.Since(start))
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		c.logger.Debug("Backend request completed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("request_id", rc.RequestID),
			logger.Int("status_code", resp.StatusCode))

		return decodeResponse(resp.StatusCode, raw, out)
	})
}

func (c *Client) observe(method string, status int, d time.Duration) {
	if c.observer != nil {
		c.observer(method, status, d)
	}
}

// envelope is the {"success", "data", "error"} wrapper some backend
// endpoints use. Bare payloads are accepted too.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeResponse(status int, raw []byte, out interface{}) error {
	var env envelope
	isObject := len(bytes.TrimSpace(raw)) > 0 && json.Unmarshal(raw, &env) == nil

	if status < 200 || status >= 300 {
		apiErr := &APIError{StatusCode: status}
		if isObject {
			apiErr.Message = env.Error
		}
		return apiErr
	}

	if isObject && env.Success != nil && !*env.Success {
		return &APIError{StatusCode: status, Message: env.Error}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	payload := raw
	if isObject && env.Success != nil && len(env.Data) > 0 {
		payload = env.Data
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
