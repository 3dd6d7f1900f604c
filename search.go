package urlscan

import (
	"context"
	"net/url"
	"strconv"
)

// SearchParams describes a search against the scan index. Only Query is
// mandatory. See https://urlscan.io/docs/search/ for the query syntax.
type SearchParams struct {
	// Query is the search query, e.g. `domain:example.com`. Required.
	Query string

	// Size is the number of results to return. Zero means the service
	// default (100); the maximum depends on your account tier.
	Size int

	// SearchAfter paginates past the previous page's last result, using
	// the sort values returned by the service.
	SearchAfter string

	// Extra carries additional query parameters, e.g. Pro-only fields.
	// Typed fields above take precedence on key collisions.
	Extra map[string]string
}

func (p *SearchParams) validate() error {
	if p == nil || p.Query == "" {
		return &ValidationError{Field: "q", Err: ErrMissingQuery}
	}
	return nil
}

func (p *SearchParams) values() url.Values {
	v := make(url.Values, len(p.Extra)+3)
	for k, value := range p.Extra {
		v.Set(k, value)
	}
	v.Set("q", p.Query)
	if p.Size > 0 {
		v.Set("size", strconv.Itoa(p.Size))
	}
	if p.SearchAfter != "" {
		v.Set("search_after", p.SearchAfter)
	}
	return v
}

// Search submits a search query to urlscan.io. Params are validated
// before any network I/O: a missing query fails with a
// *ValidationError.
func (c *Client) Search(ctx context.Context, params *SearchParams) (*Response, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	resp, err := c.apiClient.Search(ctx, params.values())
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}
