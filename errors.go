package urlscan

import (
	"errors"
	"fmt"

	"github.com/dawnstar/urlscan-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingScanURL is returned when a scan request has no URL.
	ErrMissingScanURL = errors.New("scan request must contain a URL to scan")

	// ErrInvalidVisibility is returned when a scan request carries a
	// visibility outside public, private and unlisted.
	ErrInvalidVisibility = errors.New(`visibility must be one of "public", "private" or "unlisted"`)

	// ErrMissingQuery is returned when search params have no query.
	ErrMissingQuery = errors.New("search params must contain a query to search for")

	// ErrInvalidPayload is returned when a payload cannot be serialized
	// to JSON.
	ErrInvalidPayload = errors.New("payload cannot be serialized to JSON")

	// ErrTransport is returned when a request fails at the network
	// level, including retry exhaustion.
	ErrTransport = errors.New("transport failure")
)

// ValidationError reports malformed caller input. It is returned before
// any network I/O is attempted and always wraps one of the validation
// sentinels.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

// Unwrap returns the sentinel describing the failed check.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PayloadError reports a payload that could not be converted to the
// wire format. Distinct from ValidationError so callers can tell "shape
// was right but content wasn't encodable" apart from input mistakes.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("failed to convert payload to JSON: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *PayloadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *PayloadError) Is(target error) bool {
	return target == ErrInvalidPayload
}

// TransportError reports a network-level failure: connection error,
// timeout, or exhausted retries. Remote non-2xx statuses never produce
// a TransportError; they come back as normal responses for the caller
// to inspect.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request of %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// wrapError converts internal API errors to public errors so that
// errors.Is and errors.As work against this package's types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var payloadErr *api.PayloadError
	if errors.As(err, &payloadErr) {
		return &PayloadError{Err: payloadErr.Err}
	}

	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return &TransportError{URL: transportErr.URL, Err: transportErr.Err}
	}

	return err
}
