package clientes

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dvcrn/clientes-client/pkg/api"
)

// Service maps the customer operations onto a collection of the remote API.
// T is the record type requests and responses are (de)serialized with; Record
// keeps the payload opaque. A Service is safe for concurrent use, and calls are
// not ordered with respect to each other.
type Service[T any] struct {
	client   *api.Client
	resource string
	validate Validator[T]
}

// Option configures a Service.
type Option[T any] func(*Service[T])

// WithValidator runs v on the payload of Create and Update. A failing hook
// aborts the call before anything is sent.
func WithValidator[T any](v Validator[T]) Option[T] {
	return func(s *Service[T]) {
		s.validate = v
	}
}

// WithResource points the service at another collection path.
func WithResource[T any](name string) Option[T] {
	return func(s *Service[T]) {
		s.resource = strings.Trim(name, "/")
	}
}

// New returns a service over opaque records.
func New(c *api.Client, opts ...Option[Record]) *Service[Record] {
	return NewTyped(c, opts...)
}

// NewTyped returns a service that decodes into T.
func NewTyped[T any](c *api.Client, opts ...Option[T]) *Service[T] {
	s := &Service[T]{
		client:   c,
		resource: DefaultResource,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List fetches every customer. The body must be a JSON array; a 204 or a
// null body yields a nil slice.
func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if _, err := s.client.DoJSON(ctx, http.MethodGet, s.resource, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one customer. A missing customer surfaces as the server's
// *api.HTTPError (usually 404). The result is nil on 204 or a null body.
func (s *Service[T]) Get(ctx context.Context, id interface{}) (*T, error) {
	return s.send(ctx, http.MethodGet, s.itemPath(id), nil)
}

// Create posts data and returns the record the server created, or nil when
// the server sends no value back.
func (s *Service[T]) Create(ctx context.Context, data T) (*T, error) {
	if err := s.check(data); err != nil {
		return nil, err
	}
	return s.send(ctx, http.MethodPost, s.resource, data)
}

// Update replaces the customer id with data and returns the server's copy,
// or nil when the server sends no value back.
func (s *Service[T]) Update(ctx context.Context, id interface{}, data T) (*T, error) {
	if err := s.check(data); err != nil {
		return nil, err
	}
	return s.send(ctx, http.MethodPut, s.itemPath(id), data)
}

// Delete removes the customer id. The result is nil when the server answers
// 204, otherwise whatever it sent back.
func (s *Service[T]) Delete(ctx context.Context, id interface{}) (*T, error) {
	return s.send(ctx, http.MethodDelete, s.itemPath(id), nil)
}

func (s *Service[T]) send(ctx context.Context, method, path string, in interface{}) (*T, error) {
	out := new(T)
	found, err := s.client.DoJSON(ctx, method, path, in, out)
	if err != nil || !found {
		return nil, err
	}
	return out, nil
}

// itemPath interpolates id verbatim; callers keep ids free of '/' and '?'.
func (s *Service[T]) itemPath(id interface{}) string {
	return fmt.Sprintf("%s/%v", s.resource, id)
}

func (s *Service[T]) check(data T) error {
	if s.validate == nil {
		return nil
	}
	return s.validate(data)
}
