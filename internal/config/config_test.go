package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WHATSYOUR_API_KEY", "")
	t.Setenv("WHATSYOUR_BASE_URL", "")
	t.Setenv("WHATSYOUR_TIMEOUT_SECONDS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("OUTPUT_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://whatsyour.info/api" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Timeout)
	}
	if cfg.LogLevel != "warn" || cfg.OutputFormat != "yaml" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WHATSYOUR_API_KEY", "key-123")
	t.Setenv("WHATSYOUR_BASE_URL", "http://localhost:3000/api")
	t.Setenv("WHATSYOUR_TIMEOUT_SECONDS", "3")
	t.Setenv("OUTPUT_FORMAT", "JSON")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "key-123" || cfg.BaseURL != "http://localhost:3000/api" {
		t.Fatalf("unexpected config %+v", *cfg)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Timeout)
	}
	if cfg.OutputFormat != "json" {
		t.Fatalf("expected normalized output format, got %q", cfg.OutputFormat)
	}
	if strings.Contains(cfg.String(), "key-123") {
		t.Fatalf("api key leaked in String(): %s", cfg.String())
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("WHATSYOUR_TIMEOUT_SECONDS", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
}

func TestLoadRejectsUnknownOutput(t *testing.T) {
	t.Setenv("WHATSYOUR_TIMEOUT_SECONDS", "5")
	t.Setenv("OUTPUT_FORMAT", "xml")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown output format")
	}
}
