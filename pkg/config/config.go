// ABOUTME: Configuration management for the API client with environment variable support
// ABOUTME: Defines credentials, endpoint, transport, cache and logging settings

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Cache backend names
const (
	CacheTypeNone   = "none"
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

// Config holds all client configuration
type Config struct {
	// Credentials identify the API consumer
	Credentials CredentialsConfig

	// API selects the endpoint and version
	API APIConfig

	// HTTP contains transport configuration
	HTTP HTTPConfig

	// Cache contains response cache configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig
}

// CredentialsConfig holds the API key pair
type CredentialsConfig struct {
	ClientID string
	SecretID string
}

// APIConfig holds the remote API location
type APIConfig struct {
	// Endpoint is the base URL of the API host
	Endpoint string

	// Version is the API version path segment
	Version string
}

// HTTPConfig holds transport configuration
type HTTPConfig struct {
	// Timeout is the overall request timeout in seconds
	Timeout int

	// ConnectTimeout is the connection timeout in seconds
	ConnectTimeout int

	// RateLimit is the maximum requests per second (0 = unlimited)
	RateLimit float64

	// MaxRetries is the number of GET retries on 5xx and network errors
	MaxRetries int
}

// CacheConfig holds response cache configuration
type CacheConfig struct {
	// Type specifies the cache backend (none/memory/redis)
	Type string

	// TTL is how long responses stay cached, in seconds
	TTL int

	// Redis contains Redis-specific configuration
	Redis RedisConfig
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

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is a logrus level name (debug, info, warn, error)
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Credentials: CredentialsConfig{
			ClientID: os.Getenv("UPWIND24_CLIENT_ID"),
			SecretID: os.Getenv("UPWIND24_SECRET_ID"),
		},
		API: APIConfig{
			Endpoint: getEnvOrDefault("UPWIND24_ENDPOINT", "http://dev-api.upwind24.com"),
			Version:  getEnvOrDefault("UPWIND24_VERSION", "v1.0"),
		},
		HTTP: HTTPConfig{
			Timeout:        getEnvAsIntOrDefault("UPWIND24_TIMEOUT", 30),
			ConnectTimeout: getEnvAsIntOrDefault("UPWIND24_CONNECT_TIMEOUT", 5),
			RateLimit:      getEnvAsFloatOrDefault("UPWIND24_RATE_LIMIT", 0),
			MaxRetries:     getEnvAsIntOrDefault("UPWIND24_MAX_RETRIES", 0),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("UPWIND24_CACHE_TYPE", CacheTypeNone),
			TTL:  getEnvAsIntOrDefault("UPWIND24_CACHE_TTL", 60),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Log: LogConfig{
			Level: getEnvOrDefault("UPWIND24_LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// TimeoutDuration returns the request timeout
func (h HTTPConfig) TimeoutDuration() time.Duration {
	return time.Duration(h.Timeout) * time.Second
}

// ConnectTimeoutDuration returns the connection timeout
func (h HTTPConfig) ConnectTimeoutDuration() time.Duration {
	return time.Duration(h.ConnectTimeout) * time.Second
}

// TTLDuration returns the cache TTL
func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
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

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Credentials.ClientID == "" {
		return errors.New("client id cannot be empty")
	}

	if c.Credentials.SecretID == "" {
		return errors.New("secret id cannot be empty")
	}

	if c.API.Endpoint == "" {
		return errors.New("endpoint cannot be empty")
	}

	if c.HTTP.Timeout < 1 {
		return errors.New("timeout must be at least 1 second")
	}

	if c.HTTP.ConnectTimeout < 1 {
		return errors.New("connect timeout must be at least 1 second")
	}

	if c.HTTP.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.HTTP.MaxRetries < 0 {
		return errors.New("max retries cannot be negative")
	}

	switch c.Cache.Type {
	case CacheTypeNone:
	case CacheTypeMemory, CacheTypeRedis:
		if c.Cache.TTL < 1 {
			return errors.New("cache ttl must be at least 1 second")
		}
	default:
		return errors.New("cache type must be 'none', 'memory' or 'redis'")
	}

	if c.Cache.Type == CacheTypeRedis && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
