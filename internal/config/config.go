// Package config loads process-wide configuration from environment variables.
// The signing secret deliberately has no default: the server refuses to start
// without one.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds every runtime setting of the server.
type Config struct {
	Port          int    `env:"PORT"           envDefault:"4000"`
	MongoURI      string `env:"MONGO_URI"      envDefault:"mongodb://localhost:27017/habesha"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"habesha"`

	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL"      envDefault:"168h"`
	TokenIssuer   string        `env:"TOKEN_ISSUER"   envDefault:"habesha-dating-api"`
	TokenAudience string        `env:"TOKEN_AUDIENCE" envDefault:"habesha-dating-api"`

	PasswordHasher string `env:"PASSWORD_HASHER" envDefault:"bcrypt"`
	BcryptCost     int    `env:"BCRYPT_COST"     envDefault:"12"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT"     envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// New creates a Config instance from environment variables.
func New(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

// validate checks that the configuration is complete and safe to run with.
func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.PasswordHasher != "bcrypt" && c.PasswordHasher != "argon2id" {
		return fmt.Errorf("PASSWORD_HASHER must be bcrypt or argon2id, got %q", c.PasswordHasher)
	}
	if c.PasswordHasher == "bcrypt" && (c.BcryptCost < 4 || c.BcryptCost > 31) {
		return fmt.Errorf("BCRYPT_COST out of range: %d", c.BcryptCost)
	}

	return nil
}
