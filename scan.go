package urlscan

import "context"

// Visibility is the access-control level of a submitted scan. Private
// and unlisted scans require a urlscan.io Pro account.
type Visibility string

// The visibilities accepted by urlscan.io.
const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityUnlisted Visibility = "unlisted"
)

func (v Visibility) valid() bool {
	switch v {
	case "", VisibilityPublic, VisibilityPrivate, VisibilityUnlisted:
		return true
	}
	return false
}

// ScanRequest describes a scan submission. Only URL is mandatory; empty
// fields fall back to your urlscan.io account defaults.
type ScanRequest struct {
	// URL is the URL to scan. Required.
	URL string

	// Visibility of the scan result. Empty means the account default.
	Visibility Visibility

	// Tags to apply to the scan. The service caps these at 10.
	Tags []string

	// CustomAgent is the user agent the scanner uses when fetching the
	// URL, not the one this client sends to the API.
	CustomAgent string

	// Referer is a custom referer URL for the scan.
	Referer string

	// Country to scan from. See Client.ScanCountries for valid values.
	Country string

	// Extra carries additional payload fields, e.g. Pro-only options.
	// Typed fields above take precedence on key collisions. Values must
	// be JSON-serializable or Submit fails with a *PayloadError. A
	// "visibility" key here is validated against the same enum as the
	// Visibility field.
	Extra map[string]any
}

func (r *ScanRequest) validate() error {
	if r == nil || r.URL == "" {
		return &ValidationError{Field: "url", Err: ErrMissingScanURL}
	}
	if !r.Visibility.valid() {
		return &ValidationError{Field: "visibility", Err: ErrInvalidVisibility}
	}
	// A visibility smuggled in via Extra reaches the wire whenever the
	// typed field is unset, so it gets the same enum check.
	if r.Visibility == "" {
		if raw, ok := r.Extra["visibility"]; ok {
			v, isString := raw.(string)
			if !isString || !Visibility(v).valid() {
				return &ValidationError{Field: "visibility", Err: ErrInvalidVisibility}
			}
		}
	}
	return nil
}

// payload assembles the wire payload, merging Extra under the typed
// fields.
func (r *ScanRequest) payload() map[string]any {
	p := make(map[string]any, len(r.Extra)+6)
	for k, v := range r.Extra {
		p[k] = v
	}
	p["url"] = r.URL
	if r.Visibility != "" {
		p["visibility"] = string(r.Visibility)
	}
	if len(r.Tags) > 0 {
		p["tags"] = r.Tags
	}
	if r.CustomAgent != "" {
		p["customagent"] = r.CustomAgent
	}
	if r.Referer != "" {
		p["referer"] = r.Referer
	}
	if r.Country != "" {
		p["country"] = r.Country
	}
	return p
}

// Submit submits a new scan to urlscan.io. The request is validated
// before any network I/O: a missing URL or an unknown visibility fails
// with a *ValidationError.
//
// A successful submission answers 200 with a JSON body containing the
// scan's uuid; use Result or WaitForResult to retrieve the report.
func (c *Client) Submit(ctx context.Context, req *ScanRequest) (*Response, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	resp, err := c.apiClient.PostScan(ctx, req.payload())
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}
