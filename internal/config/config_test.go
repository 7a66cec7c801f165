package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "embedded", cfg.Fixture.Source)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "admin@venueproximity.com", cfg.Auth.Email)
	assert.Equal(t, "123456", cfg.Auth.Code)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.CacheTTL)
	assert.Equal(t, 12*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, time.Minute, cfg.Auth.SweepInterval)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestNewFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("DASHBOARD_CACHE_TTL", "1m")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Minute, cfg.Dashboard.CacheTTL)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestPostgresSourceRequiresCredentials(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FIXTURE_SOURCE", "postgres")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_USER")

	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_DB", "venues")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Postgres.Port)
}

func TestInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("LOG_LEVEL", "loud")
	_, err := New()
	assert.Error(t, err)

	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("SERVER_PORT", "eighty")
	_, err = New()
	assert.Error(t, err)
}

func TestSweepIntervalMustBePositive(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AUTH_SWEEP_INTERVAL", "0s")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_SWEEP_INTERVAL")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
