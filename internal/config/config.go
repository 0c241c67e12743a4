package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"ctchen222/Five-In-A-Row/internal/validator"
)

// Config holds process settings read from the environment.
type Config struct {
	HTTPAddr     string        `validate:"required"`
	SearchDepth  int           `validate:"min=1,max=4"`
	RedisAddr    string        `validate:"omitempty,hostname_port|url"`
	CacheTTL     time.Duration `validate:"gte=0"`
	OtelEndpoint string        `validate:"omitempty,hostname_port"`
	LogLevel     string        `validate:"oneof=debug info warn error"`
	TraceStdout  bool
}

// Load reads the configuration. Unset variables fall back to defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		RedisAddr:    os.Getenv("REDIS_CONNSTRING"),
		OtelEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	depth, err := strconv.Atoi(getEnv("SEARCH_DEPTH", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_DEPTH: %w", err)
	}
	cfg.SearchDepth = depth

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	if v := os.Getenv("OTEL_TRACES_STDOUT"); v != "" {
		if cfg.TraceStdout, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid OTEL_TRACES_STDOUT: %w", err)
		}
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
