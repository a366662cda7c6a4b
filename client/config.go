package client

import (
	"fmt"
	"time"

	"github.com/bobpace/newman/message"
	"github.com/bobpace/newman/validation"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultContentType = "application/json"
)

// Config configures a client instance.
type Config struct {
	// Timeout bounds the wait for a transport reply. It applies
	// uniformly to every request issued through the client. Defaults
	// to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// DefaultContentType is used when neither the request headers nor
	// the transport response carry an explicit content type. Defaults
	// to application/json.
	DefaultContentType string `yaml:"default_content_type" mapstructure:"default_content_type" validate:"required"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.DefaultContentType == "" {
		c.DefaultContentType = defaultContentType
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("client: %w", err)
	}
	if _, err := message.ParseContentType(c.DefaultContentType); err != nil {
		return fmt.Errorf("client: default content type: %w", err)
	}
	return nil
}
