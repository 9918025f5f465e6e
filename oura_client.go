package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"resty.dev/v3"
)

const (
	// OuraAPIBaseURL is the root of the Oura v2 user-collection API.
	OuraAPIBaseURL = "https://api.ouraring.com/v2/usercollection"

	defaultHTTPTimeout = 10 * time.Second
)

// OuraClient handles all interactions with the Oura API.
type OuraClient struct {
	http *resty.Client
}

// NewOuraClient creates an Oura API client from the given configuration.
// The bearer token, base URL and timeout are fixed at construction.
func NewOuraClient(cfg *Config) *OuraClient {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json")

	return &OuraClient{http: client}
}

// Fetch performs an authenticated GET against one user-collection endpoint,
// scoped by the given date window. Empty window fields are omitted from the
// query string entirely. The response body is decoded verbatim with no
// schema validation; the element shape is upstream-defined.
func (c *OuraClient) Fetch(ctx context.Context, endpoint string, window DateWindow) (map[string]any, error) {
	var payload map[string]any

	req := c.http.R().
		SetContext(ctx).
		SetResult(&payload)

	if window.Start != "" {
		req.SetQueryParam("start_date", window.Start)
	}
	if window.End != "" {
		req.SetQueryParam("end_date", window.End)
	}

	resp, err := req.Get("/" + endpoint)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, apiError(resp.StatusCode(), resp.String())
	}

	return payload, nil
}

// apiError maps upstream status codes to user-friendly errors.
func apiError(statusCode int, body string) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("authentication failed: invalid or expired access token")
	case http.StatusForbidden:
		return fmt.Errorf("access denied: token is missing the required scope")
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limit exceeded: too many requests")
	case http.StatusBadRequest:
		return fmt.Errorf("bad request: check the date parameters")
	case http.StatusNotFound:
		return fmt.Errorf("resource not found")
	case http.StatusServiceUnavailable:
		return fmt.Errorf("Oura API temporarily unavailable")
	default:
		return fmt.Errorf("Oura API error (status %d): %s", statusCode, body)
	}
}
