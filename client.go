package urlscan

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/dawnstar/urlscan-go/internal/api"
	"github.com/dawnstar/urlscan-go/internal/transport"
)

// Response wraps a urlscan.io HTTP response: status code, headers and
// the raw body. Use JSON to decode report bodies; artifact bodies
// (screenshots, DOM, stored responses) are raw bytes.
type Response = api.Response

// Client is a urlscan.io API client. It holds the configured header set
// and a single retry-aware HTTP session, both created once at
// construction and reused for every call.
//
// A Client is immutable after New and safe for concurrent use by
// multiple goroutines; concurrent calls share the underlying
// *http.Client, which is itself concurrency-safe.
type Client struct {
	apiClient *api.Client
	logger    *slog.Logger
}

// New creates a new urlscan.io client.
//
// An API key is optional: without one the client still works but the
// service limits which actions are available, and a warning is logged.
// A missing user agent falls back to DefaultUserAgent, also with a
// warning; set a user agent unique to your application.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:    defaultBaseURL,
		timeout:    DefaultTimeout,
		retries:    DefaultRetries,
		backoff:    DefaultBackoff,
		maxBackoff: DefaultMaxBackoff,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.apiKey == "" {
		logger.Warn("no API key provided, this may limit some actions you can do with urlscan.io")
	}
	if cfg.userAgent == "" {
		cfg.userAgent = DefaultUserAgent
		logger.Warn("no user agent provided, using the default; setting a custom user agent is recommended",
			"user_agent", DefaultUserAgent)
	}

	// The header set is derived once here and never mutated afterwards.
	// Content-Type rides along on GETs too; the service ignores it there.
	headers := map[string]string{
		"Content-Type": "application/json",
		"User-Agent":   cfg.userAgent,
	}
	if cfg.apiKey != "" {
		headers["API-Key"] = cfg.apiKey
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = transport.NewSession(transport.Config{
			Retries:    cfg.retries,
			Backoff:    cfg.backoff,
			MaxBackoff: cfg.maxBackoff,
			Timeout:    cfg.timeout,
			Logger:     logger,
			Limiter:    cfg.limiter,
		})
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		Headers:    headers,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient: apiClient,
		logger:    logger,
	}, nil
}

// Execute performs an arbitrary API request over the client's session
// with the configured header set. It is the escape hatch for endpoints
// this SDK has no typed method for, such as the Pro APIs.
//
// The payload, if non-nil, is serialized to JSON (*PayloadError when
// that fails); params are encoded into the query string. Any response
// from the service is returned unchanged, whatever its status code;
// network-level failures return a *TransportError.
func (c *Client) Execute(ctx context.Context, method, rawURL string, payload map[string]any, params url.Values) (*Response, error) {
	resp, err := c.apiClient.Execute(ctx, method, rawURL, payload, params)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// BaseURL returns the service base URL this client talks to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}
