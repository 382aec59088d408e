package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LISTEN_ADDR", "REDIS_URL", "ARCHIVE_URL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":5000", cfg.ListenAddr)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Contains(t, cfg.ArchiveURL, "exoplanetarchive.ipac.caltech.edu")
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":8080")
	t.Setenv("REDIS_URL", "redis://cache:6380")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "redis://cache:6380", cfg.RedisURL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":    slog.LevelDebug,
		"INFO":     slog.LevelInfo,
		" warning": slog.LevelWarn,
		"error":    slog.LevelError,
		"verbose":  slog.LevelWarn,
		"":         slog.LevelWarn,
	}
	for raw, want := range cases {
		assert.Equal(t, want, parseLevel(raw), "level %q", raw)
	}
}
