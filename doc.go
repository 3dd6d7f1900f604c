// Package urlscan provides a Go client SDK for the urlscan.io API:
// submitting scans, fetching results and their artifacts (screenshots,
// DOM snapshots, stored responses), searching the scan index, and
// checking quotas.
//
// Responses come back as an opaque wrapper carrying the status code,
// headers and raw body; this package never interprets remote status
// codes on your behalf. Network-level failures are returned as a typed
// *TransportError, so every call is either a response to inspect or an
// error to branch on.
//
// Basic usage:
//
//	client, err := urlscan.New(
//	    urlscan.WithAPIKey(os.Getenv("URLSCAN_API_KEY")),
//	    urlscan.WithUserAgent("MyScanner/1.0"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Submit(ctx, &urlscan.ScanRequest{
//	    URL:        "https://example.com",
//	    Visibility: urlscan.VisibilityUnlisted,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var submitted struct {
//	    UUID string `json:"uuid"`
//	}
//	if err := resp.JSON(&submitted); err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.WaitForResult(ctx, submitted.UUID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.Body))
//
// An API key is optional but without one the service limits what you
// can do. See https://urlscan.io/docs/api/ for the API itself.
package urlscan
