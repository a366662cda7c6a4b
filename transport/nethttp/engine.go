package nethttp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bobpace/newman/transport"
)

// Engine performs HTTP I/O with net/http. The underlying transport and
// its connection pool are shared across all submitted requests; the
// per-request timeout is applied by a throwaway http.Client wrapping
// that shared transport.
type Engine struct {
	rt http.RoundTripper
}

// Option configures the engine.
type Option func(*Engine)

// WithRoundTripper replaces the underlying HTTP transport.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(e *Engine) { e.rt = rt }
}

// New creates an engine with a clone of the default HTTP transport.
func New(opts ...Option) *Engine {
	e := &Engine{
		rt: http.DefaultTransport.(*http.Transport).Clone(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Submit implements transport.Engine.
func (e *Engine) Submit(ctx context.Context, req *transport.Request, timeout time.Duration) <-chan any {
	ch := make(chan any, 1)
	go func() {
		defer close(ch)
		resp, err := e.roundTrip(ctx, req, timeout)
		if err != nil {
			ch <- err
			return
		}
		ch <- resp
	}()
	return ch
}

// Unwrap returns the underlying round tripper for advanced use cases.
func (e *Engine) Unwrap() http.RoundTripper {
	return e.rt
}

func (e *Engine) roundTrip(ctx context.Context, req *transport.Request, timeout time.Duration) (*transport.Response, error) {
	var body io.Reader
	if req.Entity != nil {
		body = bytes.NewReader(req.Entity.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("nethttp: create request: %w", err)
	}

	for _, h := range req.Headers {
		httpReq.Header.Add(h.Name, h.Value)
	}
	if req.Entity != nil && req.Entity.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.Entity.ContentType)
	}

	client := &http.Client{Transport: e.rt, Timeout: timeout}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nethttp: read response body: %w", err)
	}

	return nativeResponse(resp, payload), nil
}

// nativeResponse converts an *http.Response into the engine-native form.
// The content type moves into the entity; everything else stays a
// discrete header.
func nativeResponse(resp *http.Response, payload []byte) *transport.Response {
	headers := make([]transport.Header, 0, len(resp.Header))
	for name, values := range resp.Header {
		if strings.EqualFold(name, "Content-Type") {
			continue
		}
		for _, v := range values {
			headers = append(headers, transport.Header{Name: name, Value: v})
		}
	}

	return &transport.Response{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Entity: &transport.Entity{
			ContentType: resp.Header.Get("Content-Type"),
			Body:        payload,
		},
	}
}
