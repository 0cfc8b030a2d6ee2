package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Accept  string        `mapstructure:"accept"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "base_url: https://api.example.com\ntimeout: 10s\n")

	var cfg testConfig
	if err := Load("apitest", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://api.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "base_url: https://file.example.com\n")

	os.Setenv("APITEST_BASE_URL", "https://env.example.com")
	defer os.Unsetenv("APITEST_BASE_URL")

	var cfg testConfig
	if err := Load("apitest", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q, want env value", cfg.BaseURL)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "APITEST_ACCEPT=text/plain\n")

	defer os.Unsetenv("APITEST_ACCEPT")

	var cfg testConfig
	if err := Load("apitest", &cfg, WithEnvFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Accept != "text/plain" {
		t.Errorf("Accept = %q", cfg.Accept)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	var cfg testConfig
	if err := Load("apitest", &cfg, WithConfigFile("does-not-exist.yml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_NoSources(t *testing.T) {
	var cfg testConfig
	if err := Load("apitest-absent", &cfg); err != nil {
		t.Fatalf("unexpected error with no sources: %v", err)
	}
	if cfg.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty", cfg.BaseURL)
	}
}
