package http

import "net/http"

// HTTPClient is the single outbound seam: one request in, one response out.
// Implementations must be safe for concurrent use.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
