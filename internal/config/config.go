// Package config provides centralized configuration loaded from
// environment variables. Shared by every quiniela command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Remote API
	APIBaseURL        string
	RequestsPerMinute int

	// View refresh
	PollInterval time.Duration

	// Local state
	StatePath    string
	CacheEnabled bool

	// Push receiver
	PushListenAddr string
	PushPublicURL  string // externally reachable base URL of the receiver

	// Admin shared secrets (optional; only for the admin commands)
	ResetSecret  string
	UpdateSecret string

	Debug bool
}

// Load reads configuration from environment variables with sensible
// defaults. Only the API base URL is mandatory.
func Load() (*Config, error) {
	baseURL := envOr("QUINIELA_API_URL", "")
	if baseURL == "" {
		return nil, fmt.Errorf("QUINIELA_API_URL must be set")
	}

	return &Config{
		APIBaseURL:        baseURL,
		RequestsPerMinute: envInt("QUINIELA_REQUESTS_PER_MINUTE", 120),

		PollInterval: time.Duration(envInt("QUINIELA_POLL_SECONDS", 30)) * time.Second,

		StatePath:    envOr("QUINIELA_STATE_PATH", defaultStatePath()),
		CacheEnabled: envBool("QUINIELA_CACHE_ENABLED", true),

		PushListenAddr: envOr("QUINIELA_PUSH_LISTEN", "127.0.0.1:9480"),
		PushPublicURL:  envOr("QUINIELA_PUSH_URL", ""),

		ResetSecret:  envOr("QUINIELA_RESET_SECRET", ""),
		UpdateSecret: envOr("QUINIELA_UPDATE_SECRET", ""),

		Debug: envBool("QUINIELA_DEBUG", false),
	}, nil
}

// defaultStatePath puts the state file under the user config dir,
// falling back to the working directory when the home is unknown.
func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "quiniela.db"
	}
	return filepath.Join(dir, "quiniela", "state.db")
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}
