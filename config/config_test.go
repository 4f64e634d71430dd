package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("THEATER_API_URL", "")
	t.Setenv("THEATER_HTTP_TIMEOUT", "")
	t.Setenv("THEATER_LOG_FILE", "")

	cfg := Load()
	if cfg.APIBaseURL != defaultBaseURL {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, defaultBaseURL)
	}
	if cfg.HTTPTimeout != defaultTimeout {
		t.Fatalf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, defaultTimeout)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("THEATER_API_URL", "https://tickets.example.com")
	t.Setenv("THEATER_HTTP_TIMEOUT", "30")
	t.Setenv("THEATER_LOG_FILE", "/tmp/theater.log")

	cfg := Load()
	if cfg.APIBaseURL != "https://tickets.example.com" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
	if cfg.LogFile != "/tmp/theater.log" {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadIgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("THEATER_HTTP_TIMEOUT", "soon")

	if cfg := Load(); cfg.HTTPTimeout != defaultTimeout {
		t.Fatalf("HTTPTimeout = %v, want default %v", cfg.HTTPTimeout, defaultTimeout)
	}
}
