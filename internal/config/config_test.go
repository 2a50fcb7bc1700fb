package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDRESS", "STATIC_DIR", "ENFORCE_CAPACITY", "READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, "web/static", cfg.StaticDir)
	require.False(t, cfg.EnforceCapacity)
	require.Equal(t, 5*time.Second, cfg.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.WriteTimeout)
	require.Equal(t, 60*time.Second, cfg.IdleTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("STATIC_DIR", "/srv/static")
	t.Setenv("ENFORCE_CAPACITY", "true")
	t.Setenv("READ_TIMEOUT", "2s")

	cfg := Load()

	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, "/srv/static", cfg.StaticDir)
	require.True(t, cfg.EnforceCapacity)
	require.Equal(t, 2*time.Second, cfg.ReadTimeout)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("ENFORCE_CAPACITY", "yes-please")
	t.Setenv("READ_TIMEOUT", "soon")

	cfg := Load()

	require.False(t, cfg.EnforceCapacity)
	require.Equal(t, 5*time.Second, cfg.ReadTimeout)
}
