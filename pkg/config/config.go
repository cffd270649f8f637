// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, store, and other settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Store contains persistence configuration
	Store StoreConfig

	// Fetch contains page-fetch configuration
	Fetch FetchConfig

	// LogLevel is the minimum log level (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per minute per client IP
	RateLimit int
}

// StoreConfig holds persistence backend configuration
type StoreConfig struct {
	// Type specifies the store backend (memory/sqlite/redis)
	Type string

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// FilePath is the database file location
	FilePath string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// FetchConfig holds page-fetch configuration
type FetchConfig struct {
	// TimeoutSeconds bounds a single page fetch
	TimeoutSeconds int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Store: StoreConfig{
			Type: getEnvOrDefault("STORE_TYPE", "sqlite"),
			SQLite: SQLiteConfig{
				FilePath: getEnvOrDefault("SQLITE_PATH", "collector.db"),
			},
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Fetch: FetchConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("FETCH_TIMEOUT", 30),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1 request per minute")
	}

	switch c.Store.Type {
	case "memory", "sqlite", "redis":
	default:
		return errors.New("store type must be 'memory', 'sqlite' or 'redis'")
	}

	if c.Store.Type == "redis" && c.Store.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis store")
	}

	if c.Fetch.TimeoutSeconds < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	return nil
}
