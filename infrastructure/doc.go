// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache on patrickmn/go-cache
// - cache/redis: Redis-based cache on go-redis
// - http/standard: net/http transport with timeouts, rate limiting and GET retries
// - http/cached: transport decorator caching successful GET responses
// - logger/standard: logrus backed structured logger
//
// # Transport
//
//	transport := standard.NewStandardTransport(standard.Options{
//	    Timeout:        30 * time.Second,
//	    ConnectTimeout: 5 * time.Second,
//	    RateLimit:      10,
//	})
//	resp, err := transport.Send(ctx, req)
//	if err != nil {
//	    // network failure only; 4xx/5xx arrive as resp
//	}
//
// # Response cache
//
//	cache := memory.NewMemoryCache()
//	transport = cached.NewTransport(transport, cache, time.Minute, logger)
//
package infrastructure
