package urlscan

import "context"

// Result retrieves the report of a scan by its UUID. While a scan is
// still processing the service answers 404; WaitForResult handles that
// for you.
func (c *Client) Result(ctx context.Context, resultUUID string) (*Response, error) {
	resp, err := c.apiClient.GetResult(ctx, resultUUID)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// Screenshot retrieves the screenshot of a scan by its UUID. The body
// is PNG bytes.
func (c *Client) Screenshot(ctx context.Context, resultUUID string) (*Response, error) {
	resp, err := c.apiClient.GetScreenshot(ctx, resultUUID)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// DOM retrieves the DOM snapshot of a scan by its UUID.
func (c *Client) DOM(ctx context.Context, resultUUID string) (*Response, error) {
	resp, err := c.apiClient.GetDOM(ctx, resultUUID)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}

// ResponseByHash retrieves a stored HTTP response observed during a
// scan, addressed by its SHA-256 hash.
func (c *Client) ResponseByHash(ctx context.Context, responseSHA256 string) (*Response, error) {
	resp, err := c.apiClient.GetResponse(ctx, responseSHA256)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}
