// ABOUTME: Transport decorator that serves repeated GET requests from a cache
// ABOUTME: Only successful responses are stored; cache failures fall through to the inner transport

package cached

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"upwind24-go/core/domain"
	"upwind24-go/core/interfaces"
	"upwind24-go/infrastructure/http/standard"
)

// marshalEntry is replaced in tests
var marshalEntry = json.Marshal

const keyPrefix = "upwind24:response:"

// Transport wraps another transport with a response cache
type Transport struct {
	next   interfaces.Transport
	cache  interfaces.Cache
	ttl    time.Duration
	logger interfaces.Logger
}

// entry is the cached form of a response
type entry struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// NewTransport creates a caching transport around next
func NewTransport(next interfaces.Transport, cache interfaces.Cache, ttl time.Duration, logger interfaces.Logger) *Transport {
	return &Transport{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Send serves GET requests from the cache when possible
func (t *Transport) Send(ctx context.Context, req *domain.OutboundRequest) (interfaces.Response, error) {
	if req.Method != http.MethodGet {
		return t.next.Send(ctx, req)
	}

	key := CacheKey(req)
	if resp, ok := t.lookup(ctx, key); ok {
		return resp, nil
	}

	resp, err := t.next.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() >= 200 && resp.StatusCode() < 300 {
		t.store(ctx, key, resp)
	}

	return resp, nil
}

// CacheKey identifies a request by method, URL and client
func CacheKey(req *domain.OutboundRequest) string {
	sum := sha256.Sum256([]byte(req.Method + " " + req.URL + " " + req.Header.Get(domain.HeaderClient)))
	return keyPrefix + hex.EncodeToString(sum[:])
}

func (t *Transport) lookup(ctx context.Context, key string) (interfaces.Response, bool) {
	data, err := t.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			t.logger.Warn("Response cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		t.logger.Warn("Discarding corrupt cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		_ = t.cache.Delete(ctx, key)
		return nil, false
	}

	t.logger.Debug("Response cache hit", map[string]interface{}{
		"key": key,
	})
	return standard.NewResponse(e.Status, e.Body, e.Header), true
}

func (t *Transport) store(ctx context.Context, key string, resp interfaces.Response) {
	data, err := marshalEntry(entry{
		Status: resp.StatusCode(),
		Header: resp.Headers(),
		Body:   resp.Body(),
	})
	if err != nil {
		t.logger.Warn("Response cache encode failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}

	if err := t.cache.Set(ctx, key, data, t.ttl); err != nil {
		t.logger.Warn("Response cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
