package urlscan

import (
	"context"
	"net/http"
	"time"
)

// WaitForResult polls the result endpoint until the scan's report is
// available. Scans are processed asynchronously; the result endpoint
// answers 404 until processing finishes, and that is the only status
// treated as "not ready". Any other response, success or failure, is
// returned to the caller as-is.
//
// Polling runs at WithPollInterval (default 2s) until WithWaitTimeout
// (default 60s) or ctx expires, whichever comes first. Transport
// failures abort the wait immediately.
//
// Example:
//
//	resp, err := client.Submit(ctx, &urlscan.ScanRequest{URL: target})
//	if err != nil {
//	    return err
//	}
//	var submitted struct {
//	    UUID string `json:"uuid"`
//	}
//	if err := resp.JSON(&submitted); err != nil {
//	    return err
//	}
//	result, err := client.WaitForResult(ctx, submitted.UUID,
//	    urlscan.WithWaitTimeout(2*time.Minute))
func (c *Client) WaitForResult(ctx context.Context, resultUUID string, opts ...WaitOption) (*Response, error) {
	cfg := &waitConfig{
		timeout:      defaultWaitTimeout,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	ticker := time.NewTicker(cfg.pollInterval)
	defer ticker.Stop()

	for {
		resp, err := c.Result(ctx, resultUUID)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusNotFound {
			return resp, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
