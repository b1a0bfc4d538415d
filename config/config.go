// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the service configuration. Environment variables are
// prefixed with CAFFIND_, e.g. CAFFIND_HTTP_PORT, CAFFIND_REDIS_ADDR.
type Config struct {
	Env      string `envconfig:"ENV" default:"prod"`
	HTTPPort int    `envconfig:"HTTP_PORT" default:"8080"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"redis:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	JWTSecret string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"168h"`

	RankBaseURL string        `envconfig:"RANK_BASE_URL" default:"https://api.openai.com/v1"`
	RankAPIKey  string        `envconfig:"RANK_API_KEY" default:""`
	RankModel   string        `envconfig:"RANK_MODEL" default:"gpt-3.5-turbo"`
	RankTimeout time.Duration `envconfig:"RANK_TIMEOUT" default:"5s"`

	// CatalogFile optionally replaces the built-in seed dataset with a
	// JSON file on disk.
	CatalogFile string `envconfig:"CATALOG_FILE" default:""`
}

// New parses the environment into a Config.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CAFFIND", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// HTTPAddr returns the listen address.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// IsProd reports whether the service runs against real upstreams.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}
