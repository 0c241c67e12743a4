package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "SEARCH_DEPTH", "REDIS_CONNSTRING", "CACHE_TTL", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_TRACES_STDOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 2, cfg.SearchDepth)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.TraceStdout)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SEARCH_DEPTH", "3")
	t.Setenv("REDIS_CONNSTRING", "localhost:6379")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4317")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 3, cfg.SearchDepth)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "otel-collector:4317", cfg.OtelEndpoint)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Depth not a number", key: "SEARCH_DEPTH", value: "deep"},
		{name: "Depth too large", key: "SEARCH_DEPTH", value: "9"},
		{name: "Depth zero", key: "SEARCH_DEPTH", value: "0"},
		{name: "Bad TTL", key: "CACHE_TTL", value: "soon"},
		{name: "Unknown log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "Bad stdout flag", key: "OTEL_TRACES_STDOUT", value: "sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
