// Package transport builds the retry-aware HTTP session shared by all
// API calls. It is configuration over go-retryablehttp, not an original
// retry implementation.
package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// retryStatuses are the HTTP statuses that trigger a retry. urlscan.io
// answers 429 for "too many requests", so it sits alongside the usual
// transient server errors. No other status is retried.
var retryStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Config controls the session produced by NewSession.
type Config struct {
	// Retries is the maximum number of retry attempts after the initial
	// request, so a request is attempted at most Retries+1 times.
	Retries int
	// Backoff is the base delay between retry attempts. The delay grows
	// exponentially from this base.
	Backoff time.Duration
	// MaxBackoff caps the delay between retry attempts.
	MaxBackoff time.Duration
	// Timeout bounds each individual attempt. It must be non-zero; the
	// session never issues a request without a deadline.
	Timeout time.Duration
	// Logger receives retry diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
	// Limiter, when set, gates every attempt (including retries) through
	// a client-side rate limiter.
	Limiter *rate.Limiter
}

// NewSession returns an *http.Client whose transport retries requests
// that fail at the network level or receive one of retryStatuses, using
// exponential backoff seeded by cfg.Backoff. Retry exhaustion surfaces
// as an error from Do.
//
// The returned client is safe for concurrent use by multiple goroutines
// and is intended to be created once and reused.
func NewSession(cfg Config) *http.Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.Retries
	rc.RetryWaitMin = cfg.Backoff
	rc.RetryWaitMax = cfg.MaxBackoff
	rc.Logger = &leveledLogger{logger: logger}
	rc.CheckRetry = checkRetry
	// DefaultBackoff doubles the wait per attempt and honors Retry-After
	// on 429/503 responses.
	rc.Backoff = retryablehttp.DefaultBackoff
	rc.HTTPClient.Timeout = cfg.Timeout

	if cfg.Limiter != nil {
		base := rc.HTTPClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		rc.HTTPClient.Transport = &limitedTransport{base: base, limiter: cfg.Limiter}
	}

	return rc.StandardClient()
}

// Errors that repeating the request can never fix.
var (
	redirectsErrorRe = regexp.MustCompile(`stopped after \d+ redirects\z`)
	schemeErrorRe    = regexp.MustCompile(`unsupported protocol scheme`)
)

// checkRetry retries recoverable network-level failures and the fixed
// status set. Context cancellation always wins.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return recoverableError(err), nil
	}
	return resp != nil && retryStatuses[resp.StatusCode], nil
}

// recoverableError reports whether a transport error is worth
// retrying. Permanent failures such as TLS verification errors, too
// many redirects and unsupported URL schemes burn the whole retry
// budget without ever succeeding, so they give up immediately.
func recoverableError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if redirectsErrorRe.MatchString(urlErr.Error()) {
			return false
		}
		if schemeErrorRe.MatchString(urlErr.Error()) {
			return false
		}
		var certVerifyErr *tls.CertificateVerificationError
		if errors.As(urlErr.Err, &certVerifyErr) {
			return false
		}
		var unknownAuthErr x509.UnknownAuthorityError
		if errors.As(urlErr.Err, &unknownAuthErr) {
			return false
		}
	}
	return true
}

// limitedTransport waits on the rate limiter before each attempt.
type limitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// leveledLogger bridges retryablehttp's leveled logging onto slog.
// Routine request/retry chatter is demoted to debug so callers only see
// it when they opt in.
type leveledLogger struct {
	logger *slog.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}
