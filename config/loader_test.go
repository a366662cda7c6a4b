package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Timeout            time.Duration `mapstructure:"timeout"`
	DefaultContentType string        `mapstructure:"default_content_type"`
	Log                struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFromYAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
timeout: 10s
default_content_type: text/plain
log:
  level: warn
`)

	var cfg testConfig
	if err := Load("loadyaml", &cfg, WithFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.DefaultContentType != "text/plain" {
		t.Errorf("default_content_type = %q", cfg.DefaultContentType)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q", cfg.Log.Level)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "default_content_type: text/plain\n")
	t.Setenv("LOADENV_DEFAULT_CONTENT_TYPE", "application/json")
	t.Setenv("LOADENV_LOG_LEVEL", "debug")

	var cfg testConfig
	if err := Load("loadenv", &cfg, WithFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultContentType != "application/json" {
		t.Errorf("env should override yaml, got %q", cfg.DefaultContentType)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("nested env binding failed, got %q", cfg.Log.Level)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "LOADDOTENV_TIMEOUT=3s\n")

	var cfg testConfig
	if err := Load("loaddotenv", &cfg, WithEnvFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", cfg.Timeout)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	var cfg testConfig
	if err := Load("loadmissing", &cfg, WithFile("does-not-exist.yml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestKeyVariants(t *testing.T) {
	got := keyVariants("default_content_type")
	want := map[string]bool{
		"default_content_type": false,
		"default.content.type": false,
	}
	for _, v := range got {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("keyVariants missing %q, got %v", k, got)
		}
	}
}
