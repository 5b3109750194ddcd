package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/auth")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 15, cfg.JwtAccessMinutes)
	assert.Equal(t, 10, cfg.OtpMinutes)
	assert.Equal(t, 20, cfg.TokenLength)
	assert.Equal(t, 587, cfg.SmtpPort)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_ProductionRequiresSmtp(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/auth")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SMTP_HOST", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_HOST")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/auth")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("SESSION_TOKEN_LENGTH", "32")
	t.Setenv("OTP_MINUTES", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 32, cfg.TokenLength)
	assert.Equal(t, 10, cfg.OtpMinutes, "bad int falls back to default")
}
