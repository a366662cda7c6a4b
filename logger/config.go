package logger

// Config controls logger output.
type Config struct {
	// Level is the minimum level: debug, info, warn, error. Defaults to info.
	Level string `yaml:"level" mapstructure:"level"`
	// Format is "json" or "console". Defaults to console.
	Format string `yaml:"format" mapstructure:"format"`
	// Output is "stdout" or "stderr". Defaults to stdout.
	Output string `yaml:"output" mapstructure:"output"`
	// NoColor disables ANSI colors in console output.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
	// Timestamp enables timestamps on each entry.
	Timestamp bool `yaml:"timestamp" mapstructure:"timestamp"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}
