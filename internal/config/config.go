package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const EnvProduction = "production"

// Config holds every runtime setting, loaded once at process start.
// Token lifetimes and the signing key are injected from here into the
// issuer and verification gate; nothing reads the environment after Load.
type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"5000"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`

	JWTSecret      string        `env:"JWT_SECRET"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTTLSec  int           `env:"REFRESH_TOKEN_TTL_SEC" envDefault:"604800"`
	AuthCodeTTL    time.Duration `env:"AUTH_CODE_TTL" envDefault:"5m"`

	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	AdminEmail string `env:"ADMIN_EMAIL"`
	NGOEmail   string `env:"NGO_EMAIL"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	DatabaseDSN string `env:"DATABASE_DSN"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service must not start with.
// Serving tokens without a signing key is a fatal misconfiguration.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.AccessTokenTTL <= 0 {
		return errors.New("config: ACCESS_TOKEN_TTL must be positive")
	}
	if c.RefreshTTLSec <= 0 {
		return errors.New("config: REFRESH_TOKEN_TTL_SEC must be positive")
	}
	if c.AuthCodeTTL <= 0 {
		return errors.New("config: AUTH_CODE_TTL must be positive")
	}
	return nil
}

// RefreshTTL returns the refresh credential lifetime as a duration.
func (c Config) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLSec) * time.Second
}

// IsProduction reports whether the service runs with production
// cookie policies (Secure, SameSite=Strict).
func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}
