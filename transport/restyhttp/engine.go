package restyhttp

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bobpace/newman/transport"
)

// Engine performs HTTP I/O with a shared resty client. The per-request
// timeout is applied through a context deadline rather than the resty
// client-level timeout, so one engine can serve callers with different
// timeout policies.
type Engine struct {
	client *resty.Client
}

// New creates an engine with a fresh resty client.
func New() *Engine {
	return NewWithClient(resty.New())
}

// NewWithClient creates an engine around an already configured client.
func NewWithClient(client *resty.Client) *Engine {
	return &Engine{client: client}
}

// Submit implements transport.Engine.
func (e *Engine) Submit(ctx context.Context, req *transport.Request, timeout time.Duration) <-chan any {
	ch := make(chan any, 1)
	go func() {
		defer close(ch)

		rctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		r := e.client.R().SetContext(rctx)
		for _, h := range req.Headers {
			r.Header.Add(h.Name, h.Value)
		}
		if req.Entity != nil {
			r.SetHeader("Content-Type", req.Entity.ContentType)
			r.SetBody(req.Entity.Body)
		}

		resp, err := r.Execute(req.Method, req.URL.String())
		if err != nil {
			ch <- err
			return
		}
		ch <- nativeResponse(resp)
	}()
	return ch
}

// Unwrap returns the underlying resty client for advanced use cases.
func (e *Engine) Unwrap() *resty.Client {
	return e.client
}

func nativeResponse(resp *resty.Response) *transport.Response {
	wire := resp.Header()
	headers := make([]transport.Header, 0, len(wire))
	for name, values := range wire {
		if strings.EqualFold(name, "Content-Type") {
			continue
		}
		for _, v := range values {
			headers = append(headers, transport.Header{Name: name, Value: v})
		}
	}

	return &transport.Response{
		StatusCode: resp.StatusCode(),
		Headers:    headers,
		Entity: &transport.Entity{
			ContentType: wire.Get("Content-Type"),
			Body:        resp.Body(),
		},
	}
}
