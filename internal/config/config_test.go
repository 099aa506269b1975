package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T) *Config {
	t.Helper()

	cfg, err := env.ParseAs[Config]()
	require.NoError(t, err)

	return &cfg
}

func TestDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg := parse(t)
	require.NoError(t, cfg.validate())

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017/habesha", cfg.MongoURI)
	assert.Equal(t, "habesha", cfg.MongoDatabase)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "bcrypt", cfg.PasswordHasher)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestValidate_SecretRequired(t *testing.T) {
	cfg := parse(t)
	cfg.JWTSecret = ""

	require.Error(t, cfg.validate())
}

func TestValidate_RejectsUnknownHasher(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("PASSWORD_HASHER", "md5")

	cfg := parse(t)
	require.Error(t, cfg.validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("PASSWORD_HASHER", "argon2id")

	cfg := parse(t)
	require.NoError(t, cfg.validate())

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "argon2id", cfg.PasswordHasher)
}
