package api

import (
	"context"
	"net/http"
	"net/url"
)

// Endpoint paths under the service base URL. These are fixed by the
// urlscan.io API, not discovered at runtime.
const (
	apiPath        = "/api/v1"
	quotaPath      = "/user/quotas/"
	domPath        = "/dom"
	screenshotPath = "/screenshots"
	responsePath   = "/responses"
)

// GetQuotas fetches the usage quotas for the current API key.
func (c *Client) GetQuotas(ctx context.Context) (*Response, error) {
	return c.Execute(ctx, http.MethodGet, c.baseURL+quotaPath, nil, nil)
}

// GetResult fetches the report of a scan.
func (c *Client) GetResult(ctx context.Context, resultUUID string) (*Response, error) {
	return c.Execute(ctx, http.MethodGet, c.baseURL+apiPath+"/result/"+url.PathEscape(resultUUID), nil, nil)
}

// GetScreenshot fetches the screenshot captured during a scan.
func (c *Client) GetScreenshot(ctx context.Context, resultUUID string) (*Response, error) {
	return c.Execute(ctx, http.MethodGet, c.baseURL+screenshotPath+"/"+url.PathEscape(resultUUID), nil, nil)
}

// GetDOM fetches the DOM snapshot captured during a scan.
func (c *Client) GetDOM(ctx context.Context, resultUUID string) (*Response, error) {
	return c.Execute(ctx, http.MethodGet, c.baseURL+domPath+"/"+url.PathEscape(resultUUID), nil, nil)
}

// GetResponse fetches a stored HTTP response body by its SHA-256 hash.
func (c *Client) GetResponse(ctx context.Context, responseSHA256 string) (*Response, error) {
	return c.Execute(ctx, http.MethodGet, c.baseURL+responsePath+"/"+url.PathEscape(responseSHA256), nil, nil)
}

// GetScanCountries fetches the countries available as scan origins.
func (c *Client) GetScanCountries(ctx context.Context) (*Response, error) {
	return c.Execute(ctx, http.MethodGet, c.baseURL+apiPath+"/availableCountries/", nil, nil)
}

// PostScan submits a new scan.
func (c *Client) PostScan(ctx context.Context, payload map[string]any) (*Response, error) {
	return c.Execute(ctx, http.MethodPost, c.baseURL+apiPath+"/scan/", payload, nil)
}

// Search runs a search query against the scan index.
func (c *Client) Search(ctx context.Context, params url.Values) (*Response, error) {
	return c.Execute(ctx, http.MethodGet, c.baseURL+apiPath+"/search/", nil, params)
}
