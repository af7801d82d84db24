package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("IS_PRODUCTION", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/api", cfg.BaseURL)
	assert.Equal(t, DevJWTSecret, cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenExpiryDuration)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, int64(1000), cfg.RateLimitMax)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"https://carlinegarage.netlify.app"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	resetViper(t)
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrInsecureJWTSecret)

	resetViper(t)
	t.Setenv("JWT_SECRET", DevJWTSecret)
	_, err = LoadConfig()
	assert.ErrorIs(t, err, ErrInsecureJWTSecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	resetViper(t)
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("REFRESH_TOKEN_EXPIRY_DURATION", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenExpiryDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}
