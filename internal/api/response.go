package api

import (
	"encoding/json"
	"net/http"
)

// Response is an opaque wrapper around a urlscan.io HTTP response. The
// body is carried as raw bytes; result reports are JSON while artifacts
// (screenshots, DOM snapshots, hashed responses) may be binary, and this
// layer passes both through unchanged.
//
// Any HTTP status may appear here, including non-2xx; callers inspect
// StatusCode themselves.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Success reports whether the status code is in the 2xx range.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
