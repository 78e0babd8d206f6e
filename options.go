// ABOUTME: Configuration options for the Upwind24 client
// ABOUTME: Provides functional options pattern for flexible client configuration

package upwind24

import (
	"io"
	"time"

	"upwind24-go/core/interfaces"
	"upwind24-go/infrastructure/http/standard"
	logger "upwind24-go/infrastructure/logger/standard"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// Endpoint is the API base URL
	Endpoint string

	// Version is the API version segment
	Version string

	// Transport replaces the default transport; timeouts, rate limit and
	// retries are then ignored
	Transport interfaces.Transport

	// Timeout bounds a whole request on the default transport
	Timeout time.Duration

	// ConnectTimeout bounds connection setup on the default transport
	ConnectTimeout time.Duration

	// RateLimit caps requests per second on the default transport
	RateLimit float64

	// MaxRetries is the number of GET retries on the default transport
	MaxRetries int

	// Logger receives request logs
	Logger interfaces.Logger

	// Cache enables response caching for successful GET calls
	Cache interfaces.Cache

	// CacheTTL is how long cached responses live
	CacheTTL time.Duration

	closers []io.Closer
}

// WithEndpoint sets the API base URL
func WithEndpoint(endpoint string) Option {
	return func(c *Config) error {
		if endpoint == "" {
			return NewError(ErrorTypeConfiguration, "endpoint cannot be empty")
		}
		c.Endpoint = endpoint
		return nil
	}
}

// WithVersion sets the API version segment
func WithVersion(version string) Option {
	return func(c *Config) error {
		c.Version = version
		return nil
	}
}

// WithTransport sets a custom transport
func WithTransport(transport interfaces.Transport) Option {
	return func(c *Config) error {
		c.Transport = transport
		return nil
	}
}

// WithTimeout sets the overall request timeout of the default transport
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive").
				WithContext("timeout", timeout.String())
		}
		c.Timeout = timeout
		return nil
	}
}

// WithConnectTimeout sets the connection timeout of the default transport
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "connect timeout must be positive").
				WithContext("connect_timeout", timeout.String())
		}
		c.ConnectTimeout = timeout
		return nil
	}
}

// WithRateLimit caps the default transport at perSecond requests per second
func WithRateLimit(perSecond float64) Option {
	return func(c *Config) error {
		if perSecond < 0 {
			return NewError(ErrorTypeConfiguration, "rate limit cannot be negative")
		}
		c.RateLimit = perSecond
		return nil
	}
}

// WithRetries enables GET retries on the default transport
func WithRetries(maxRetries int) Option {
	return func(c *Config) error {
		if maxRetries < 0 {
			return NewError(ErrorTypeConfiguration, "max retries cannot be negative")
		}
		c.MaxRetries = maxRetries
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(l interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

// WithResponseCache caches successful GET responses for ttl
func WithResponseCache(cache interfaces.Cache, ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl <= 0 {
			return NewError(ErrorTypeConfiguration, "cache ttl must be positive")
		}
		c.Cache = cache
		c.CacheTTL = ttl
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Endpoint:       DefaultEndpoint,
		Version:        DefaultVersion,
		Timeout:        standard.DefaultTimeout,
		ConnectTimeout: standard.DefaultConnectTimeout,
		Logger:         logger.NewQuietLogger(),
	}
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.Endpoint == "" {
		return NewError(ErrorTypeConfiguration, "endpoint is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	return nil
}
