// Package api implements the low-level HTTP client for the urlscan.io
// API: request assembly, header handling, JSON serialization, and the
// typed errors for payload and transport failures. Retry behavior lives
// in the transport package; response interpretation belongs to callers.
package api
