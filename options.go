package urlscan

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultUserAgent identifies this SDK when no custom user agent is
	// configured. Setting your own via WithUserAgent is recommended.
	DefaultUserAgent = "urlscan-go/1.0"

	// DefaultRetries is the number of retry attempts after the initial
	// request.
	DefaultRetries = 5

	// DefaultBackoff is the base delay between retries; the delay grows
	// exponentially from here.
	DefaultBackoff = time.Second

	// DefaultMaxBackoff caps the delay between retries.
	DefaultMaxBackoff = 30 * time.Second

	// DefaultTimeout bounds each request attempt. A client is never
	// built without a timeout.
	DefaultTimeout = 30 * time.Second
)

const (
	defaultBaseURL      = "https://urlscan.io"
	defaultWaitTimeout  = 60 * time.Second
	defaultPollInterval = 2 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	apiKey     string
	userAgent  string
	baseURL    string
	timeout    time.Duration
	retries    int
	backoff    time.Duration
	maxBackoff time.Duration
	logger     *slog.Logger
	limiter    *rate.Limiter
	httpClient *http.Client
}

// waitConfig holds configuration for waiting on a scan result.
type waitConfig struct {
	timeout      time.Duration
	pollInterval time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// WaitOption configures result waiting.
type WaitOption func(*waitConfig)

// WithAPIKey sets the urlscan.io API key. The key is optional; without
// one the service limits which actions are available.
func WithAPIKey(apiKey string) Option {
	return func(c *clientConfig) {
		c.apiKey = apiKey
	}
}

// WithUserAgent sets the User-Agent header sent on every request, e.g.
// "BobSecurityScanner/v1".
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithBaseURL overrides the service base URL. Mainly useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-attempt request timeout.
// Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retry attempts for transient failures
// and rate-limiting responses. A request is attempted at most count+1
// times. Default: 5.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithBackoff sets the base delay between retries. The delay doubles
// after each attempt, up to the maximum backoff. Default: 1 second.
func WithBackoff(base time.Duration) Option {
	return func(c *clientConfig) {
		c.backoff = base
	}
}

// WithMaxBackoff caps the delay between retries. Default: 30 seconds.
func WithMaxBackoff(maxBackoff time.Duration) Option {
	return func(c *clientConfig) {
		c.maxBackoff = maxBackoff
	}
}

// WithLogger sets the logger used for client diagnostics. Default:
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRateLimiter installs a client-side rate limiter that gates every
// request attempt. urlscan.io enforces per-minute quotas; a limiter
// keeps a busy client from burning its retry budget on 429s.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *clientConfig) {
		c.limiter = limiter
	}
}

// WithHTTPClient sets a custom HTTP client, bypassing the retry-aware
// session factory entirely. The caller then owns retry behavior.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithWaitTimeout sets the overall timeout for WaitForResult.
// Default: 60 seconds.
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = timeout
	}
}

// WithPollInterval sets the interval between result polls.
// Default: 2 seconds.
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}
