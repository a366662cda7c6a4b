package transport

import (
	"context"
	"time"
)

// Engine is a pluggable asynchronous transport. Implementations manage
// their own connections and scheduling; the client core only composes
// on top of the reply channel.
type Engine interface {
	// Submit issues the request and returns a channel on which exactly
	// one reply is delivered: a *Response on success or an error on
	// failure. The channel is closed after the reply. Implementations
	// bound their own I/O by timeout; ctx covers the caller's lifetime.
	// A reply of any other type is a wiring fault.
	Submit(ctx context.Context, req *Request, timeout time.Duration) <-chan any
}
