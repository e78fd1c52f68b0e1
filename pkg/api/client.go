package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	serverhttp "github.com/dvcrn/clientes-client/internal/http"
)

// HTTPClient is the transport a Client sends through.
type HTTPClient = serverhttp.HTTPClient

const contentTypeJSON = "application/json"

var jsonNull = []byte("null")

var supportedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodPatch:  true,
}

// RequestOptions describes one call to Do. The zero value is a GET with no body.
type RequestOptions struct {
	Method string
	// Header is merged over the defaults; a caller value replaces the default
	// of the same (canonical) name.
	Header http.Header
	// Body is sent as-is; callers serialize it.
	Body []byte
}

// Client performs JSON requests against a fixed base URL. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	logger     *zerolog.Logger
	newID      func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for exchanges and HTTP errors. Without it the
// client logs nothing.
func WithLogger(l *zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithRequestIDFunc replaces the generator of X-Request-Id values.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) {
		c.newID = fn
	}
}

// NewClient creates a client rooted at baseURL. Trailing slashes are dropped;
// an empty baseURL makes every request path relative ("/clientes").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		nop := zerolog.Nop()
		c.logger = &nop
	}
	if c.httpClient == nil {
		c.httpClient = serverhttp.NewHTTPClient()
	}
	c.httpClient = serverhttp.NewLoggingClient(c.httpClient, c.logger)
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL joins the base URL and path with exactly one slash. Path segments are
// not escaped.
func (c *Client) URL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Do sends one request and normalizes the outcome:
//   - transport failures are returned unmodified;
//   - a non-2xx status yields an *HTTPError;
//   - 204 yields (nil, nil) regardless of the body;
//   - any other 2xx body is returned as validated JSON, and an invalid body
//     returns the encoding/json error unmodified.
func (c *Client) Do(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}
	if !supportedMethods[method] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, opts.Method)
	}

	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), body)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header = c.header(opts.Header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{
			Method:     method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       readText(resp.Body),
		}
		c.logger.Warn().
			Str("request_id", req.Header.Get(serverhttp.RequestIDHeader)).
			Int("status", resp.StatusCode).
			Msg(httpErr.Error())
		return nil, httpErr
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DoJSON is the typed envelope over Do. A non-nil in is marshaled as the body;
// the result is decoded into a non-nil out. found is false when the server sent
// no value (204 or a literal null body), in which case out is left untouched.
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out interface{}) (found bool, err error) {
	opts := &RequestOptions{Method: method}
	if in != nil {
		opts.Body, err = json.Marshal(in)
		if err != nil {
			return false, fmt.Errorf("could not marshal request body: %w", err)
		}
	}

	raw, err := c.Do(ctx, path, opts)
	if err != nil {
		return false, err
	}
	if raw == nil || bytes.Equal(raw, jsonNull) {
		return false, nil
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (c *Client) header(extra http.Header) http.Header {
	h := make(http.Header, 3+len(extra))
	h.Set("Accept", contentTypeJSON)
	h.Set("Content-Type", contentTypeJSON)
	h.Set(serverhttp.RequestIDHeader, c.newID())
	for k, v := range extra {
		h[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
	}
	return h
}

// readText drains an error body. Read failures degrade to "".
func readText(r io.Reader) string {
	b, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	return string(b)
}
