package urlscan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *ScanRequest
		wantErr error
	}{
		{"nil request", nil, ErrMissingScanURL},
		{"missing url", &ScanRequest{}, ErrMissingScanURL},
		{"unknown visibility", &ScanRequest{URL: "http://example.com", Visibility: "secret"}, ErrInvalidVisibility},
		{"uppercase visibility", &ScanRequest{URL: "http://example.com", Visibility: "Public"}, ErrInvalidVisibility},
		{"unknown visibility via extra", &ScanRequest{URL: "http://example.com", Extra: map[string]any{"visibility": "secret"}}, ErrInvalidVisibility},
		{"non-string visibility via extra", &ScanRequest{URL: "http://example.com", Extra: map[string]any{"visibility": 42}}, ErrInvalidVisibility},
		{"valid visibility via extra", &ScanRequest{URL: "http://example.com", Extra: map[string]any{"visibility": "unlisted"}}, nil},
		{"typed visibility overrides extra", &ScanRequest{URL: "http://example.com", Visibility: VisibilityPublic, Extra: map[string]any{"visibility": "secret"}}, nil},
		{"public", &ScanRequest{URL: "http://example.com", Visibility: VisibilityPublic}, nil},
		{"private", &ScanRequest{URL: "http://example.com", Visibility: VisibilityPrivate}, nil},
		{"unlisted", &ScanRequest{URL: "http://example.com", Visibility: VisibilityUnlisted}, nil},
		{"visibility unset", &ScanRequest{URL: "http://example.com"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests.Add(1)
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)

			_, err := client.Submit(context.Background(), tt.req)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Submit() error = %v, want nil", err)
				}
				if requests.Load() != 1 {
					t.Errorf("requests = %d, want 1", requests.Load())
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Submit() error = %v, want %v", err, tt.wantErr)
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("Submit() error type = %T, want *ValidationError", err)
			}
			// Validation failures must never reach the network.
			if requests.Load() != 0 {
				t.Errorf("requests = %d, want 0", requests.Load())
			}
		})
	}
}

func TestSubmit_SendsScanPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/v1/scan/" {
			t.Errorf("path = %s, want /api/v1/scan/", r.URL.Path)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["url"] != "http://example.com" {
			t.Errorf(`body["url"] = %v, want http://example.com`, body["url"])
		}
		if len(body) != 1 {
			t.Errorf("body has %d keys, want 1: %v", len(body), body)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	if _, err := client.Submit(context.Background(), &ScanRequest{URL: "http://example.com"}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
}

func TestScanRequest_PayloadFields(t *testing.T) {
	req := &ScanRequest{
		URL:         "http://example.com",
		Visibility:  VisibilityUnlisted,
		Tags:        []string{"phishing", "demo"},
		CustomAgent: "ScanBot/2",
		Referer:     "http://referrer.example",
		Country:     "de",
	}

	p := req.payload()

	want := map[string]any{
		"url":         "http://example.com",
		"visibility":  "unlisted",
		"customagent": "ScanBot/2",
		"referer":     "http://referrer.example",
		"country":     "de",
	}
	for k, v := range want {
		if p[k] != v {
			t.Errorf("payload[%q] = %v, want %v", k, p[k], v)
		}
	}
	tags, ok := p["tags"].([]string)
	if !ok || len(tags) != 2 {
		t.Errorf("payload[tags] = %v, want two tags", p["tags"])
	}
}

func TestScanRequest_TypedFieldsWinOverExtra(t *testing.T) {
	req := &ScanRequest{
		URL: "http://example.com",
		Extra: map[string]any{
			"url":           "http://overridden.invalid",
			"overrideSafe":  true,
			"customHeaders": map[string]string{"X-Test": "1"},
		},
	}

	p := req.payload()

	if p["url"] != "http://example.com" {
		t.Errorf(`payload["url"] = %v, want the typed field`, p["url"])
	}
	if p["overrideSafe"] != true {
		t.Error("extra fields should pass through")
	}
}

func TestSubmit_ExtraVisibilityNeverReachesWireInvalid(t *testing.T) {
	var wireVisibility atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		wireVisibility.Store(body["visibility"])
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Invalid value via Extra is rejected before any I/O.
	_, err := client.Submit(context.Background(), &ScanRequest{
		URL:   "http://example.com",
		Extra: map[string]any{"visibility": "secret"},
	})
	if !errors.Is(err, ErrInvalidVisibility) {
		t.Fatalf("Submit() error = %v, want ErrInvalidVisibility", err)
	}
	if wireVisibility.Load() != nil {
		t.Fatalf("invalid visibility reached the wire: %v", wireVisibility.Load())
	}

	// With the typed field set, it wins over the Extra value on the wire.
	_, err = client.Submit(context.Background(), &ScanRequest{
		URL:        "http://example.com",
		Visibility: VisibilityPublic,
		Extra:      map[string]any{"visibility": "secret"},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if got := wireVisibility.Load(); got != "public" {
		t.Errorf("wire visibility = %v, want public", got)
	}
}

func TestSubmit_UnserializableExtra(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	req := &ScanRequest{
		URL:   "http://example.com",
		Extra: map[string]any{"bad": make(chan int)},
	}

	_, err := client.Submit(context.Background(), req)
	if !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("Submit() error = %v, want ErrInvalidPayload", err)
	}

	// Serialization failure is not a validation failure.
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		t.Error("error is *ValidationError, want *PayloadError")
	}
	var payloadErr *PayloadError
	if !errors.As(err, &payloadErr) {
		t.Errorf("error type = %T, want *PayloadError", err)
	}
	if requests.Load() != 0 {
		t.Errorf("requests = %d, want 0", requests.Load())
	}
}
