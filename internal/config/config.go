package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables at startup.
type Config struct {
	App   AppConfig
	Redis RedisConfig
	JWT   JWTConfig
	Auth  AuthConfig
	Cache CacheConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// AuthConfig carries the static admin API key. The key is read once at
// startup and never mutated afterwards.
type AuthConfig struct {
	APIKey string
}

type CacheConfig struct {
	MovieTTL time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	tokenTTL, err := time.ParseDuration(getEnv("JWT_TOKEN_TTL", "8h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TOKEN_TTL: %w", err)
	}

	movieTTL, err := time.ParseDuration(getEnv("CACHE_MOVIE_TTL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_MOVIE_TTL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Movies API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", ""),
			TokenTTL: tokenTTL,
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Cache: CacheConfig{
			MovieTTL: movieTTL,
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Auth.APIKey == "" {
		return nil, fmt.Errorf("API_KEY is required")
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
