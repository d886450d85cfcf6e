// Package api is the client for the remote workout API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/meltforce/momentum/internal/session"
)

// DefaultBaseURL is the hosted workout API.
const DefaultBaseURL = "https://muscle-momentum-api.onrender.com/api"

// Client calls the workout API on behalf of whoever is signed in to the
// session store. A 401 answer clears the store.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   session.Store
	logger     *slog.Logger

	// getAttempts is how many times an idempotent GET is tried.
	getAttempts  int
	retryBackoff time.Duration
}

// NewClient creates a Client targeting baseURL. A zero timeout means 30s.
func NewClient(baseURL string, timeout time.Duration, sessions session.Store, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		sessions:     sessions,
		logger:       logger,
		getAttempts:  2,
		retryBackoff: 500 * time.Millisecond,
	}
}

// Sessions returns the store the client reads its token from.
func (c *Client) Sessions() session.Store {
	return c.sessions
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: encode %s body: %w", path, err)
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts = c.getAttempts
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryBackoff), uint64(attempts-1)),
		ctx,
	)
	op := func() error {
		retry, err := c.once(ctx, method, path, params, body, out)
		if err != nil && !retry {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Warn("retrying api request", "method", method, "path", path, "wait", wait, "error", err)
	}
	return backoff.RetryNotify(op, policy, notify)
}

// once performs a single request. retry reports whether the failure is worth
// another attempt (transport errors and 5xx answers).
func (c *Client) once(ctx context.Context, method, path string, params url.Values, body []byte, out any) (retry bool, err error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return false, fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := session.Token(ctx, c.sessions); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return false, fmt.Errorf("api: %s %s: %w", method, path, err)
		}
		return true, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("api: read body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if err := c.sessions.Clear(ctx); err != nil {
			c.logger.Error("clearing session after 401", "error", err)
		}
		return false, fmt.Errorf("%w: %s %s", ErrUnauthorized, method, path)
	case resp.StatusCode >= 400:
		return resp.StatusCode >= 500, newHTTPError(method, path, resp.StatusCode, respBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return false, fmt.Errorf("api: decode %s: %w", path, err)
	}
	return false, nil
}
