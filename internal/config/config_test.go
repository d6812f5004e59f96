package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTTL())
	assert.Equal(t, 5*time.Minute, cfg.AuthCodeTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_MissingSigningKeyIsFatal(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("REFRESH_TOKEN_TTL_SEC", "3600")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, time.Hour, cfg.RefreshTTL())
}

func TestValidate_RejectsNonPositiveTTLs(t *testing.T) {
	cfg := Config{JWTSecret: "s", AccessTokenTTL: 0, RefreshTTLSec: 1, AuthCodeTTL: time.Minute}
	assert.Error(t, cfg.Validate())

	cfg = Config{JWTSecret: "s", AccessTokenTTL: time.Minute, RefreshTTLSec: -1, AuthCodeTTL: time.Minute}
	assert.Error(t, cfg.Validate())

	cfg = Config{JWTSecret: "s", AccessTokenTTL: time.Minute, RefreshTTLSec: 1, AuthCodeTTL: 0}
	assert.Error(t, cfg.Validate())
}
