package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
base_url: https://demo.crediflow.dev/api
username: demo
password: secret
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://demo.crediflow.dev/api" {
		t.Errorf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.Username != "demo" || cfg.Password != "secret" {
		t.Errorf("unexpected credentials %q/%q", cfg.Username, cfg.Password)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("unexpected log level %q", cfg.Log.Level)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "base_url: https://file.example.com\npassword: from-file\n")

	t.Setenv("CREDIFLOW_BASE_URL", "https://env.example.com")
	t.Setenv("CREDIFLOW_PASSWORD", "from-env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("expected env override, got %q", cfg.BaseURL)
	}
	if cfg.Password != "from-env" {
		t.Errorf("expected env override, got %q", cfg.Password)
	}
}

func TestLoadConfigEnvOnly(t *testing.T) {
	t.Setenv("CREDIFLOW_BASE_URL", "https://env.example.com")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("unexpected base url %q", cfg.BaseURL)
	}
}

func TestLoadConfigMissingBaseURL(t *testing.T) {
	t.Setenv("CREDIFLOW_BASE_URL", "")

	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected error without a base url")
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := writeConfig(t, "base_url: [not, a, scalar")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
