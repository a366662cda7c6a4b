package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configFile string
	envFile    string
}

// WithFile sets an explicit YAML config file path.
func WithFile(path string) Option {
	return func(o *loadOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) { o.envFile = path }
}

// Load reads configuration into cfg. The name scopes environment
// variable lookup: variables prefixed with the upper-cased name plus an
// underscore override values from the .env and YAML files.
func Load(name string, cfg any, opts ...Option) error {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()

	if o.configFile != "" {
		if _, err := os.Stat(o.configFile); err != nil {
			return fmt.Errorf("config: stat %s: %w", o.configFile, err)
		}
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", o.configFile, err)
		}
	}

	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return fmt.Errorf("config: load env file %s: %w", o.envFile, err)
		}
	}

	bindPrefixedEnv(v, name)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for %s: %w", name, err)
	}
	return nil
}

// bindPrefixedEnv sets every NAME_-prefixed environment variable on the
// viper instance under each key variant the variable could address.
func bindPrefixedEnv(v *viper.Viper, name string) {
	prefix := strings.ToUpper(strings.ReplaceAll(name, "-", "_")) + "_"

	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}

		key := strings.ToLower(strings.TrimPrefix(pair[0], prefix))
		for _, variant := range keyVariants(key) {
			v.Set(variant, pair[1])
		}
	}
}

// keyVariants maps an underscore-separated key to the nested key forms
// it could address, e.g. "log_level" -> ["log_level", "log.level"].
func keyVariants(key string) []string {
	parts := strings.Split(key, "_")
	if len(parts) == 1 {
		return []string{key}
	}

	variants := []string{key, strings.Join(parts, ".")}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return variants
}
