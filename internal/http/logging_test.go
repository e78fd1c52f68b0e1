package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	resp *http.Response
	err  error
	reqs []*http.Request
}

func (s *stubClient) Do(req *http.Request) (*http.Response, error) {
	s.reqs = append(s.reqs, req)
	return s.resp, s.err
}

func newTestLogger(buf *bytes.Buffer) *zerolog.Logger {
	l := zerolog.New(buf).Level(zerolog.DebugLevel)
	return &l
}

func TestLoggingClientPassesThroughResponse(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	stub := &stubClient{resp: &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[]`)),
	}}
	var buf bytes.Buffer
	client := NewLoggingClient(stub, newTestLogger(&buf))

	req, err := http.NewRequest(http.MethodGet, "http://api.test/clientes", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	assert.Same(t, stub.resp, resp)
	require.Len(t, stub.reqs, 1)
	assert.Same(t, req, stub.reqs[0])

	out := buf.String()
	assert.Contains(t, out, "Outgoing request")
	assert.Contains(t, out, "Finished request")
	assert.Contains(t, out, `"status":200`)
}

func TestLoggingClientReturnsTransportErrorUnchanged(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")
	stub := &stubClient{err: boom}
	var buf bytes.Buffer
	client := NewLoggingClient(stub, newTestLogger(&buf))

	req, err := http.NewRequest(http.MethodDelete, "http://api.test/clientes/1", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	assert.Nil(t, resp)
	assert.Same(t, boom, err)
	assert.Contains(t, buf.String(), "Request failed")
}
