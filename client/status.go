package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// StatusClient queries the backend's check-status endpoint.
type StatusClient struct {
	baseURL string
	http    *http.Client
}

// NewStatusClient returns a client for the backend at baseURL.
func NewStatusClient(baseURL string) *StatusClient {
	return &StatusClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CheckPaid implements StatusFunc against the backend API.
func (c *StatusClient) CheckPaid(ctx context.Context, orderID string) (bool, error) {
	endpoint := c.baseURL + "/check-status/" + url.PathEscape(orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build status request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("check status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("check status: backend returned %d", resp.StatusCode)
	}

	var body struct {
		Paid bool `json:"paid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decode status response: %w", err)
	}
	return body.Paid, nil
}
