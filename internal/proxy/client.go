package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUpstream marks any failure to obtain a usable response from the
// authority: connection refused, timeout, or a non-200 status. Callers fail
// open to registered defaults instead of surfacing it.
var ErrUpstream = errors.New("authority unavailable")

// HTTPDoer abstracts http.Client.Do for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches content from the authority with a bounded timeout and a
// single attempt per request. No retries: stale or default content beats a
// visible outage.
type Client struct {
	baseURL string
	client  HTTPDoer
}

// NewClient constructs an authority client. A nil doer gets a plain
// http.Client with the given timeout.
func NewClient(baseURL string, timeout time.Duration, doer HTTPDoer) *Client {
	if doer == nil {
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  doer,
	}
}

// GetJSON fetches a path and decodes the 200 response into dst. Every other
// outcome wraps ErrUpstream.
func (c *Client) GetJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: get %s: %v", ErrUpstream, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: get %s: status %d", ErrUpstream, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUpstream, path, err)
	}
	return nil
}

// PostJSON forwards a JSON payload and returns the upstream status and body.
// Transport failures wrap ErrUpstream.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: post %s: %v", ErrUpstream, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: read %s: %v", ErrUpstream, path, err)
	}
	return resp.StatusCode, data, nil
}
