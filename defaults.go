// ABOUTME: Default implementations and environment based construction
// ABOUTME: Wires pkg/config settings into transport, cache and logger choices

package upwind24

import (
	"context"
	"io"
	"os"

	"upwind24-go/core/domain"
	"upwind24-go/core/interfaces"
	"upwind24-go/core/request"
	"upwind24-go/infrastructure/cache/memory"
	"upwind24-go/infrastructure/cache/redis"
	"upwind24-go/infrastructure/http/standard"
	logger "upwind24-go/infrastructure/logger/standard"
	"upwind24-go/pkg/config"
)

// DefaultTransport creates the standard transport with default timeouts
func DefaultTransport() interfaces.Transport {
	return standard.NewStandardTransport(standard.DefaultOptions())
}

// DefaultLogger creates a logrus backed logger writing to stderr
func DefaultLogger() interfaces.Logger {
	return logger.NewStandardLogger()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return logger.NewQuietLogger()
}

// DefaultMemoryCache creates an in-process response cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// withCloser registers a resource released by Client.Close
func withCloser(closer io.Closer) Option {
	return func(c *Config) error {
		c.closers = append(c.closers, closer)
		return nil
	}
}

// NewClientFromConfig creates a client from loaded configuration. Extra
// options are applied after the configured ones.
func NewClientFromConfig(ctx context.Context, cfg *config.Config, options ...Option) (*Client, error) {
	creds := domain.Credentials{
		ClientID: cfg.Credentials.ClientID,
		SecretID: cfg.Credentials.SecretID,
	}
	if err := request.ValidateCredentials(creds); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, NewError(ErrorTypeConfiguration, "invalid configuration").WithCause(err)
	}

	log := logger.NewStandardLoggerWithOutput(os.Stderr, logger.ParseLevel(cfg.Log.Level))

	opts := []Option{
		WithEndpoint(cfg.API.Endpoint),
		WithVersion(cfg.API.Version),
		WithTimeout(cfg.HTTP.TimeoutDuration()),
		WithConnectTimeout(cfg.HTTP.ConnectTimeoutDuration()),
		WithRateLimit(cfg.HTTP.RateLimit),
		WithRetries(cfg.HTTP.MaxRetries),
		WithLogger(log),
	}

	var redisCache *redis.RedisCache
	switch cfg.Cache.Type {
	case config.CacheTypeMemory:
		opts = append(opts, WithResponseCache(DefaultMemoryCache(), cfg.Cache.TTLDuration()))
		log.Info("Using memory response cache", map[string]interface{}{
			"ttl_seconds": cfg.Cache.TTL,
		})
	case config.CacheTypeRedis:
		cache, err := redis.NewRedisCache(ctx, cfg.Cache.Redis)
		if err != nil {
			return nil, NewError(ErrorTypeConfiguration, "redis cache unavailable").
				WithCause(err).
				WithContext("address", cfg.Cache.Redis.Address)
		}
		redisCache = cache
		opts = append(opts, WithResponseCache(cache, cfg.Cache.TTLDuration()), withCloser(cache))
		log.Info("Using Redis response cache", map[string]interface{}{
			"address":     cfg.Cache.Redis.Address,
			"ttl_seconds": cfg.Cache.TTL,
		})
	}

	client, err := NewClient(creds.ClientID, creds.SecretID, append(opts, options...)...)
	if err != nil {
		if redisCache != nil {
			redisCache.Close()
		}
		return nil, err
	}

	return client, nil
}
