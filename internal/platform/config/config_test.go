package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "data.sqlite", cfg.SQLitePath)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_EMAIL", "  Boss@Example.com ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JWT_EXPIRY_DURATION", "2h")

	cfg, err := LoadConfig([]string{"--port", "9100", "--log-level", "debug", "--sqlite-db-path", "/tmp/x.sqlite"})
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port, "flags win over env")
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/x.sqlite", cfg.SQLitePath)
	assert.Equal(t, "boss@example.com", cfg.AdminEmail)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiryDuration)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("DB_DRIVER", "postgres")
		_, err := LoadConfig(nil)
		assert.ErrorContains(t, err, "PGSQL_URL")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		_, err := LoadConfig([]string{"--db-driver", "mysql"})
		assert.ErrorContains(t, err, "unsupported DB_DRIVER")
	})

	t.Run("default secret in production", func(t *testing.T) {
		t.Setenv("IS_PRODUCTION", "true")
		t.Setenv("JWT_SECRET", defaultJWTSecret)
		_, err := LoadConfig(nil)
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("bad expiry falls back", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRY_DURATION", "soon")
		cfg, err := LoadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, 168*time.Hour, cfg.JWTExpiryDuration)
	})
}
