package client

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/bobpace/newman/future"
	"github.com/bobpace/newman/logger"
	"github.com/bobpace/newman/message"
	"github.com/bobpace/newman/transport"
)

// Client issues canonical HTTP requests through a transport engine. It
// holds no mutable state beyond its configuration; the engine handle is
// shared read-only across requests and its lifecycle belongs to the
// caller that constructed it.
type Client struct {
	engine    transport.Engine
	config    Config
	defaultCT message.ContentType
	clock     clock.Clock
	log       *logger.Logger
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger used for dispatch activity. The default
// discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l.WithComponent("client") }
}

// WithClock replaces the clock used for the dispatch timeout.
func WithClock(clk clock.Clock) Option {
	return func(c *Client) { c.clock = clk }
}

// New creates a client around the given transport engine.
func New(engine transport.Engine, cfg Config, opts ...Option) (*Client, error) {
	if engine == nil {
		return nil, fmt.Errorf("client: transport engine is required")
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		engine:    engine,
		config:    cfg,
		defaultCT: message.ContentType(cfg.DefaultContentType),
		clock:     clock.New(),
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PendingRequest pairs a request description with the future holding
// its eventual canonical response. It is the unit callers hold and
// await; dispatch has already started by the time it is returned.
type PendingRequest struct {
	// ID correlates log entries for this request.
	ID uuid.UUID
	// Method, URL, Headers, and Body describe the request as issued.
	Method  message.Method
	URL     string
	Headers message.Headers
	Body    message.RawBody
	// Response resolves exactly once, to a canonical response or a
	// typed *Error.
	Response *future.Value[*message.Response]
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, url string, headers message.Headers) *PendingRequest {
	return c.dispatch(ctx, message.MethodGet, url, headers, nil)
}

// Post issues a POST request with an optional body.
func (c *Client) Post(ctx context.Context, url string, headers message.Headers, body message.RawBody) *PendingRequest {
	return c.dispatch(ctx, message.MethodPost, url, headers, body)
}

// Put issues a PUT request with an optional body.
func (c *Client) Put(ctx context.Context, url string, headers message.Headers, body message.RawBody) *PendingRequest {
	return c.dispatch(ctx, message.MethodPut, url, headers, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, url string, headers message.Headers) *PendingRequest {
	return c.dispatch(ctx, message.MethodDelete, url, headers, nil)
}

// Head issues a HEAD request.
func (c *Client) Head(ctx context.Context, url string, headers message.Headers) *PendingRequest {
	return c.dispatch(ctx, message.MethodHead, url, headers, nil)
}

// Config returns the client's configuration.
func (c *Client) Config() Config {
	return c.config
}
