package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 12 * time.Second
)

// Config holds process-level settings, read from the environment with an
// optional .env file loaded first.
type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	LogFile     string
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:  getenv("THEATER_API_URL", defaultBaseURL),
		HTTPTimeout: defaultTimeout,
		LogFile:     strings.TrimSpace(os.Getenv("THEATER_LOG_FILE")),
	}
	if raw := strings.TrimSpace(os.Getenv("THEATER_HTTP_TIMEOUT")); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			cfg.HTTPTimeout = time.Duration(seconds) * time.Second
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
