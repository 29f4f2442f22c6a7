// Package config loads application configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	HTTP  HTTPConfig
	Redis RedisConfig
}

// HTTPConfig holds the JSON API server configuration
type HTTPConfig struct {
	Port            int `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout int `env:"HTTP_SHUTDOWN_TIMEOUT_SECONDS" envDefault:"30"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	// Missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
