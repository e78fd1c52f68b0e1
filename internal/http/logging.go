package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type loggingClient struct {
	next   HTTPClient
	logger *zerolog.Logger
}

// RequestIDHeader carries the per-request correlation id when the caller sets one.
const RequestIDHeader = "X-Request-Id"

// NewLoggingClient wraps next so every exchange is logged at debug level with
// its method, URL, status and duration. Failed exchanges are logged at error.
func NewLoggingClient(next HTTPClient, logger *zerolog.Logger) HTTPClient {
	return &loggingClient{next: next, logger: logger}
}

func (c *loggingClient) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := c.logger.With().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", req.Header.Get(RequestIDHeader)).
		Logger()

	log.Debug().Msg("Outgoing request")

	resp, err := c.next.Do(req)
	if err != nil {
		log.Error().
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("Request failed")
		return nil, err
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Finished request")

	return resp, nil
}
