package config

import (
	"os"
	"strings"
)

// Config holds server configuration read from the environment.
type Config struct {
	HTTPAddr    string
	CORSOrigins []string
	DBPath      string
	LogLevel    string
}

// FromEnv builds a Config from environment variables with defaults for
// local development.
func FromEnv() Config {
	return Config{
		HTTPAddr:    envOr("QUIZY_HTTP_ADDR", ":5000"),
		CORSOrigins: csvOr("QUIZY_CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DBPath:      os.Getenv("QUIZY_DB"),
		LogLevel:    envOr("QUIZY_LOG_LEVEL", "info"),
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func csvOr(k, def string) []string {
	v := os.Getenv(k)
	if v == "" {
		v = def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
