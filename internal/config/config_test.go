package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("API_KEY", "secret")
	t.Setenv("DB_URL", "postgres://localhost:5432/catalog")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15, cfg.ReadTimeoutSecs)
	assert.Equal(t, 20, cfg.DBMaxConns)
	assert.Equal(t, 2, cfg.DBMinConns)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "30")
	t.Setenv("DB_MAX_CONNS", "5")
	t.Setenv("DB_MIN_CONNS", "1")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30, cfg.ReadTimeoutSecs)
	assert.Equal(t, 5, cfg.DBMaxConns)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_RequiredValues(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("DB_URL", "postgres://localhost:5432/catalog")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")

	t.Setenv("API_KEY", "secret")
	t.Setenv("DB_URL", "")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_URL")
}

func TestLoad_PoolBounds(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_MAX_CONNS", "2")
	t.Setenv("DB_MIN_CONNS", "10")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MIN_CONNS")
}
