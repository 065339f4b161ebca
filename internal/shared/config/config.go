package config

import (
	"encoding/hex"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration
type Config struct {
	Version     string `env:"VERSION" envDefault:"0.1.0"`
	Port        int    `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN   string `env:"SENTRY_DSN"`

	// DatabasePath is the SQLite file holding the users table.
	DatabasePath string `env:"DATABASE_PATH" envDefault:"users.db"`

	// BackgroundImage is read once and inlined into every page as a data URI.
	BackgroundImage string `env:"BACKGROUND_IMAGE" envDefault:"sm.jpg"`

	// ReportURL is the embedded Power BI report. Deploy-time constant.
	ReportURL string `env:"REPORT_URL" envDefault:"https://app.powerbi.com/view?r=eyJrIjoiMzg4OTViZmUtZTg3MS00MzMxLTlkYTItMGY1NGVmN2MxZWRmIiwidCI6ImY4ZmM1YmRlLWEzYzMtNDExMy04NDYzLWVhY2JmZmIxZjA4OCJ9"`

	// SecretKey is the hex-encoded AES key for session cookies.
	SecretKey string `env:"SECRET_KEY" envDefault:"f20183c4d2e65aab38f0deb16cbec0290e685827c2d902816ea8a0b2bf2a3cd1"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsEnvProd() bool {
	if c.Environment == "prod" && c.SentryDSN != "" {
		return true
	}
	return false
}

// SecretKeyBytes decodes the hex secret key used for session cookie encryption.
func (c *Config) SecretKeyBytes() ([]byte, error) {
	key, err := hex.DecodeString(c.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("invalid hex secret key: %w", err)
	}
	switch len(key) {
	case 16, 24, 32:
		return key, nil
	default:
		return nil, fmt.Errorf("secret key must be 16, 24 or 32 bytes, got %d", len(key))
	}
}
