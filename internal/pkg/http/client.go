package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 15 * time.Second
)

// StatusError is returned for non-2xx responses so callers can classify the
// failure by status code. The body is retained for diagnostics.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

// Client is a generic JSON HTTP client for communicating with external
// services. Per-request headers are supplied by the caller.
type Client struct {
	BaseURL    string
	HTTPClient *nethttp.Client
}

// NewClient creates a new HTTP client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// PostJSON performs a POST request with a JSON body and decodes the JSON
// response into result when it is non-nil.
func (c *Client) PostJSON(ctx context.Context, endpoint string, headers map[string]string, body interface{}, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPost, endpoint, headers, body, result)
}

// GetJSON performs a GET request and decodes the JSON response into result.
func (c *Client) GetJSON(ctx context.Context, endpoint string, headers map[string]string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodGet, endpoint, headers, nil, result)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: respBody}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
