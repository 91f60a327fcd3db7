// ABOUTME: HTTP client for the rental backend REST API
// ABOUTME: Attaches the bearer token on every request and clears the session on 401

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/holgerweigert/verleih/internal/session"
)

// requestTimeout bounds every backend call.
const requestTimeout = 10 * time.Second

// Client is the API client for the rental backend. All domain
// operations issue exactly one HTTP call and decode the JSON body.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a logger for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates an API client for the given base URL. The session store
// supplies the bearer token and receives the 401 invalidation side
// effect.
func New(baseURL string, store session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		store: store,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and decodes the response into out (skipped
// when out is nil). The bearer token, when present, is attached before
// dispatch; a 401 response clears the session store and the failure is
// propagated unchanged.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token, ok := c.store.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Session is no longer valid; the login-state monitor picks
		// this up and routes back to the login screen.
		if cerr := c.store.Clear(); cerr != nil {
			c.log.Error().Err(cerr).Msg("failed to clear session after 401")
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages.
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse builds an *Error from a non-2xx response.
func (c *Client) handleErrorResponse(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}
	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
		apiErr.Message = errResp.Error
		if apiErr.Message == "" {
			apiErr.Message = errResp.Message
		}
	}
	c.log.Warn().Int("status", resp.StatusCode).Str("message", apiErr.Message).Msg("backend error")
	return apiErr
}
