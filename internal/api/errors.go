package api

import "fmt"

// PayloadError indicates a request payload could not be serialized to
// JSON. It is distinct from input validation so callers can tell "shape
// was right but content wasn't encodable" apart from caller mistakes.
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

// TransportError represents a network-level failure: connection errors,
// timeouts, or retry exhaustion. Remote non-2xx statuses are not
// transport errors; those come back as normal responses.
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
