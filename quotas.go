package urlscan

import "context"

// Quotas retrieves the usage quotas for the current API key, covering
// both the user and its team where applicable.
func (c *Client) Quotas(ctx context.Context) (*Response, error) {
	resp, err := c.apiClient.GetQuotas(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// ScanCountries retrieves the countries available as scan origins for
// the ScanRequest Country field.
func (c *Client) ScanCountries(ctx context.Context) (*Response, error) {
	resp, err := c.apiClient.GetScanCountries(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}
