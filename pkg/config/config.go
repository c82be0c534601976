// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, content API, cache and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	coreerrors "catcare-web/core/errors"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Contentful contains content delivery API credentials
	Contentful ContentfulConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// SiteName is shown in the page header, footer and titles
	SiteName string

	// StaticDir is served under /static and holds the placeholder image
	StaticDir string

	// RateLimit is the number of requests allowed per client per RateWindow (0 disables)
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration

	// TrustProxy keys rate limits by X-Forwarded-For / X-Real-IP; set only
	// behind a reverse proxy that overwrites those headers
	TrustProxy bool
}

// ContentfulConfig holds content delivery API configuration
type ContentfulConfig struct {
	// SpaceID identifies the content space (required)
	SpaceID string

	// AccessToken is the delivery API token (required)
	AccessToken string

	// Environment is the space environment, "master" by default
	Environment string

	// BaseURL overrides the API host (preview API, tests)
	BaseURL string

	// Timeout bounds a single API request
	Timeout time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (none/memory/redis/sqlite)
	Type string

	// TTL is how long fetched content stays cached (0 disables caching)
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
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

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int

	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level (debug, info, warn, error)
	Level string

	// Format is "text" or "json"
	Format string

	// File, when set, receives rotated log output instead of stdout
	File string
}

// Cache backend types
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheSQLite = "sqlite"
)

// LoadDotEnv loads variables from .env style files without overriding
// variables already present in the environment.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			SiteName:   getEnvOrDefault("SITE_NAME", "Cat Care & Education Hub"),
			StaticDir:  getEnvOrDefault("STATIC_DIR", "./public"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow: getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
			TrustProxy: getEnvAsBoolOrDefault("TRUST_PROXY", false),
		},
		Contentful: ContentfulConfig{
			SpaceID:     os.Getenv("CONTENTFUL_SPACE_ID"),
			AccessToken: os.Getenv("CONTENTFUL_ACCESS_TOKEN"),
			Environment: getEnvOrDefault("CONTENTFUL_ENVIRONMENT", "master"),
			BaseURL:     getEnvOrDefault("CONTENTFUL_BASE_URL", "https://cdn.contentful.com"),
			Timeout:     getEnvAsDurationOrDefault("CONTENTFUL_TIMEOUT", 10*time.Second),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", CacheMemory),
			TTL:  getEnvAsDurationOrDefault("CACHE_TTL", time.Minute),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
				CleanupInterval:   getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", 600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "cache.db"),
			},
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
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

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("90s", "5m") or bare seconds
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid. Missing content API
// credentials are reported as a ConfigError since the site cannot start without them.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Contentful.SpaceID == "" {
		return &coreerrors.ConfigError{Key: "CONTENTFUL_SPACE_ID", Message: "must be set"}
	}

	if c.Contentful.AccessToken == "" {
		return &coreerrors.ConfigError{Key: "CONTENTFUL_ACCESS_TOKEN", Message: "must be set"}
	}

	switch c.Cache.Type {
	case CacheNone, CacheMemory, CacheRedis, CacheSQLite:
	default:
		return errors.New("cache type must be 'none', 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.TTL < 0 {
		return errors.New("cache ttl cannot be negative")
	}

	if c.Cache.Type == CacheRedis && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == CacheSQLite && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
