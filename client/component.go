package client

import (
	"context"
	"fmt"

	"github.com/bobpace/newman/component"
	"github.com/bobpace/newman/transport"
)

// Component wraps a Client with lifecycle management for hosts that
// start and stop their infrastructure uniformly. The client is created
// lazily in Start.
type Component struct {
	engine transport.Engine
	config Config
	opts   []Option
	client *Client
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a lifecycle-managed client component.
func NewComponent(engine transport.Engine, cfg Config, opts ...Option) *Component {
	return &Component{engine: engine, config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	return "http-client"
}

// Start builds the client.
func (c *Component) Start(_ context.Context) error {
	cl, err := New(c.engine, c.config, c.opts...)
	if err != nil {
		return err
	}
	c.client = cl
	return nil
}

// Stop releases the component's reference to the client. The engine's
// resources belong to whoever constructed it.
func (c *Component) Stop(_ context.Context) error {
	c.client = nil
	return nil
}

// Health reports whether the client is ready to issue requests.
func (c *Component) Health(_ context.Context) component.Health {
	status := component.StatusHealthy
	if c.client == nil {
		status = component.StatusUnhealthy
	}
	return component.Health{
		Name:   c.Name(),
		Status: status,
	}
}

// Describe returns component description for a startup summary.
func (c *Component) Describe() component.Description {
	cfg := c.config
	cfg.ApplyDefaults()
	return component.Description{
		Name:    "HTTP Client",
		Type:    "http-client",
		Details: fmt.Sprintf("timeout=%s default=%s", cfg.Timeout, cfg.DefaultContentType),
	}
}

// Client returns the underlying client. Must be called after Start.
func (c *Component) Client() *Client {
	return c.client
}
