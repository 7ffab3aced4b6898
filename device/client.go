// Package device talks to the charging controller over its plain HTTP
// command interface.
package device

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrUnreachable reports a failed trigger call: network error or a
// non-success status from the device.
var ErrUnreachable = errors.New("device unreachable")

// Client issues start commands to a single device host.
type Client struct {
	host string
	http *http.Client
}

// NewClient returns a trigger client for the given host (ip or ip:port).
func NewClient(host string) *Client {
	return &Client{
		host: host,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Trigger asks the device to run for timeMs milliseconds and returns the raw
// response body. Response semantics are owned by the device.
func (c *Client) Trigger(ctx context.Context, orderID string, timeMs int64) (string, error) {
	endpoint := fmt.Sprintf("http://%s/start?time=%d&order=%s", c.host, timeMs, url.QueryEscape(orderID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build device request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUnreachable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: device returned status %d", ErrUnreachable, resp.StatusCode)
	}
	return string(body), nil
}
