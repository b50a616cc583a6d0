// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every configuration parameter of the application.
// It is loaded once at startup and treated as immutable afterwards.
type Config struct {
	// Port is the HTTP listen port.
	Port string `env:"PORT" envDefault:"3000"`

	// Database coordinates. The service targets MySQL.
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBHost     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBName     string `env:"DB_NAME,required"`

	// RunMigrations gates the schema sync at boot.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`

	// JWTSecret signs bearer tokens. The process refuses to start without it.
	JWTSecret string `env:"JWT_SECRET,required"`

	// TokenTTL is the validity window of issued tokens.
	TokenTTL time.Duration `env:"JWT_EXPIRES_IN" envDefault:"1h"`

	// Redis is optional; when RedisHost is empty the service runs without cache.
	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// Load reads the configuration from the environment, consulting a .env file
// in development when one exists. Missing required variables fail fast.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration from environment: %w", err)
	}
	return &cfg, nil
}
