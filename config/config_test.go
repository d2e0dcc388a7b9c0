package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="

func setBaseEnv(t *testing.T) {
	t.Setenv("MONGOSTRING", "mongodb://localhost:27017")
	t.Setenv("PASETO_SECRET", testSecret)
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("SEED_ADMIN_EMAIL", "")
	t.Setenv("SEED_ADMIN_PASSWORD", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "attendance-db", cfg.DBName)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "Asia/Jakarta", cfg.Timezone)
	assert.Equal(t, defaultAllowedOrigins, cfg.AllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SEED_ADMIN_EMAIL", "admin@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.SeedAdminEmail, "seeding needs both email and password")
}

func TestLoadConfigErrors(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("MONGOSTRING", "")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "MONGOSTRING")

	setBaseEnv(t)
	t.Setenv("PASETO_SECRET", "c2hvcnQ=")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "PASETO_SECRET")

	setBaseEnv(t)
	t.Setenv("TOKEN_TTL", "-1h")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "TOKEN_TTL")

	setBaseEnv(t)
	t.Setenv("TIMEZONE", "Nowhere/Special")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "TIMEZONE")
}
