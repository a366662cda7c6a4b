// Package transporttest provides a scripted in-memory transport engine
// for tests.
package transporttest

import (
	"context"
	"sync"
	"time"

	"github.com/bobpace/newman/transport"
)

// Closed is a scripted reply that closes the reply channel without
// delivering a value.
var Closed = closed{}

type closed struct{}

// Engine is a scripted transport engine. Scripted replies are consumed
// in order, one per Submit call. A Submit call with no scripted reply
// leaves the reply channel open forever, which exercises timeout paths.
type Engine struct {
	mu       sync.Mutex
	replies  []any
	requests []*transport.Request
}

// New creates an engine with no scripted replies.
func New() *Engine {
	return &Engine{}
}

// Reply scripts the next reply. The value may be a *transport.Response,
// an error, Closed, or anything else to exercise the defensive paths.
// It returns the engine for chaining.
func (e *Engine) Reply(v any) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.replies = append(e.replies, v)
	return e
}

// Submit implements transport.Engine.
func (e *Engine) Submit(_ context.Context, req *transport.Request, _ time.Duration) <-chan any {
	e.mu.Lock()
	e.requests = append(e.requests, req)
	var reply any
	scripted := len(e.replies) > 0
	if scripted {
		reply = e.replies[0]
		e.replies = e.replies[1:]
	}
	e.mu.Unlock()

	ch := make(chan any, 1)
	if !scripted {
		return ch
	}
	if _, ok := reply.(closed); !ok {
		ch <- reply
	}
	close(ch)
	return ch
}

// Requests returns the requests submitted so far, in order.
func (e *Engine) Requests() []*transport.Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*transport.Request, len(e.requests))
	copy(out, e.requests)
	return out
}

// LastRequest returns the most recently submitted request, or nil.
func (e *Engine) LastRequest() *transport.Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.requests) == 0 {
		return nil
	}
	return e.requests[len(e.requests)-1]
}

// Response builds a native response with the given status, content type,
// and body, plus optional discrete headers.
func Response(status int, contentType string, body []byte, headers ...transport.Header) *transport.Response {
	return &transport.Response{
		StatusCode: status,
		Headers:    headers,
		Entity: &transport.Entity{
			ContentType: contentType,
			Body:        body,
		},
	}
}
