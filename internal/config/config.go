// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server and journal settings.
type Config struct {
	Addr          string
	TokenSecret   string
	TokenTTL      time.Duration
	SessionTTL    time.Duration
	SweepInterval time.Duration
	CORSOrigins   string
	JournalDSN    string
}

// Load reads .env files (if present) and then the environment. Variables
// already set in the environment take precedence over .env values.
func Load(envFiles ...string) (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		Addr:        getEnv("PYLEARN_ADDR", ":8080"),
		TokenSecret: getEnv("PYLEARN_TOKEN_SECRET", "pylearn-dev-secret"),
		CORSOrigins: getEnv("PYLEARN_CORS_ORIGINS", "*"),
		JournalDSN:  getEnv("PYLEARN_DB", ":memory:"),
	}

	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"PYLEARN_TOKEN_TTL", "24h", &cfg.TokenTTL},
		{"PYLEARN_SESSION_TTL", "2h", &cfg.SessionTTL},
		{"PYLEARN_SWEEP_INTERVAL", "1m", &cfg.SweepInterval},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(getEnv(d.key, d.def))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", d.key, err)
		}
		*d.dst = v
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("PYLEARN_TOKEN_SECRET must not be empty")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
