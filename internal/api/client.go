package api

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
)

// Client is the low-level HTTP API client. It holds the fixed header
// set and the shared retry-aware session; one instance is created per
// urlscan.Client and reused for every call.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
	logger     *slog.Logger
}

// Config configures the API client.
type Config struct {
	// BaseURL is the scheme+host of the urlscan.io service.
	BaseURL string
	// Headers is the header set attached to every outbound request.
	Headers map[string]string
	// HTTPClient is the shared session, normally built by the transport
	// factory.
	HTTPClient *http.Client
	// Logger receives transport-failure diagnostics. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.HTTPClient == nil {
		return nil, errors.New("HTTP client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Copy the header set so construction-time state cannot be mutated
	// by the caller afterwards.
	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		headers:    headers,
		httpClient: cfg.HTTPClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute performs a single API request. If payload is non-nil it is
// serialized to JSON and sent as the request body; params, if non-nil,
// are encoded into the query string. The full configured header set is
// attached to every request.
//
// Any response from the service, regardless of status code, is returned
// as a *Response with a nil error. Network-level failures (connection
// errors, timeouts, retry exhaustion) are logged and returned as a
// *TransportError.
func (c *Client) Execute(ctx context.Context, method, rawURL string, payload map[string]any, params url.Values) (*Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &PayloadError{Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	if len(params) > 0 {
		q := req.URL.Query()
		for k, values := range params {
			for _, v := range values {
				q.Add(k, v)
			}
		}
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("urlscan request failed", "url", rawURL, "error", err)
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("urlscan response read failed", "url", rawURL, "error", err)
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
