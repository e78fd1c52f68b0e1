package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnsupportedMethod is returned by Do for methods outside
// GET/POST/PUT/DELETE/PATCH. No request is sent.
var ErrUnsupportedMethod = errors.New("unsupported method")

// HTTPError is returned when the server answers outside the 2xx range.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	// Body is the response text, or "" when it was empty or unreadable.
	Body string
}

// Error renders "HTTP <code> - <reason>", where reason is the body text or,
// when that is empty, the standard status phrase.
func (e *HTTPError) Error() string {
	reason := e.Body
	if reason == "" {
		reason = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d - %s", e.StatusCode, reason)
}

// IsStatus reports whether err carries an HTTPError with the given status.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == code
}
