// ABOUTME: Main client for the Upwind24 WebAPI: signs, dispatches and decodes calls
// ABOUTME: Thin facade over the request builder and an injected transport

package upwind24

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"upwind24-go/core/domain"
	"upwind24-go/core/interfaces"
	"upwind24-go/core/request"
	"upwind24-go/infrastructure/http/cached"
	"upwind24-go/infrastructure/http/standard"
)

// Client is the entry point for the Upwind24 API. It is safe for
// concurrent use.
type Client struct {
	builder *request.Builder
	deps    interfaces.Dependencies
	closers []io.Closer
}

// NewClient creates a client for the given credentials. Missing
// credentials fail with an invalid parameter error before any option is
// applied.
func NewClient(clientID, secretID string, options ...Option) (*Client, error) {
	creds := domain.Credentials{ClientID: clientID, SecretID: secretID}
	if err := request.ValidateCredentials(creds); err != nil {
		return nil, err
	}

	config := defaultConfig()
	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	builder, err := request.NewBuilder(creds, domain.EndpointConfig{
		Endpoint: config.Endpoint,
		Version:  config.Version,
	})
	if err != nil {
		return nil, err
	}

	transport := config.Transport
	if transport == nil {
		transport = standard.NewStandardTransport(standard.Options{
			Timeout:        config.Timeout,
			ConnectTimeout: config.ConnectTimeout,
			RateLimit:      config.RateLimit,
			MaxRetries:     config.MaxRetries,
		})
	}

	if config.Cache != nil {
		transport = cached.NewTransport(transport, config.Cache, config.CacheTTL, config.Logger)
	}

	return &Client{
		builder: builder,
		deps: interfaces.Dependencies{
			Transport: transport,
			Logger:    config.Logger,
		},
		closers: config.closers,
	}, nil
}

// Close releases resources owned by the client, such as a Redis
// connection opened by NewClientFromConfig
func (c *Client) Close() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// RawCall signs and sends a request and returns the raw response. Error
// statuses come back as a Response; only transport failures are errors.
func (c *Client) RawCall(ctx context.Context, method, path string, content any, authenticate bool, headers map[string]string) (Response, error) {
	req, err := c.builder.Build(method, path, content, authenticate, headers)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := c.deps.Transport.Send(ctx, req)
	if err != nil {
		c.deps.Logger.Warn("Request failed", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        req.URL,
			"error":      err.Error(),
		})
		return nil, err
	}

	c.deps.Logger.Debug("Request completed", map[string]interface{}{
		"request_id":  requestID,
		"method":      req.Method,
		"url":         req.URL,
		"status":      resp.StatusCode(),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return resp, nil
}

// Get sends content as query parameters and decodes the JSON response
func (c *Client) Get(ctx context.Context, path string, content any, headers map[string]string) (any, error) {
	return c.call(ctx, http.MethodGet, path, content, headers)
}

// Post sends content as a JSON body and decodes the JSON response
func (c *Client) Post(ctx context.Context, path string, content any, headers map[string]string) (any, error) {
	return c.call(ctx, http.MethodPost, path, content, headers)
}

// Put sends content as a JSON body and decodes the JSON response
func (c *Client) Put(ctx context.Context, path string, content any, headers map[string]string) (any, error) {
	return c.call(ctx, http.MethodPut, path, content, headers)
}

// Delete sends content as a JSON body and decodes the JSON response
func (c *Client) Delete(ctx context.Context, path string, content any, headers map[string]string) (any, error) {
	return c.call(ctx, http.MethodDelete, path, content, headers)
}

func (c *Client) call(ctx context.Context, method, path string, content any, headers map[string]string) (any, error) {
	resp, err := c.RawCall(ctx, method, path, content, true, headers)
	if err != nil {
		return nil, err
	}
	return DecodeResponse(resp), nil
}

// DecodeResponse parses a JSON body into maps, slices and scalars.
// Integral numbers decode to int64 and other numbers to float64. An empty
// or malformed body yields nil, so a nil result is ambiguous.
func DecodeResponse(resp Response) any {
	if resp == nil || len(resp.Body()) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil
	}
	return convertNumbers(decoded)
}

func convertNumbers(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = convertNumbers(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = convertNumbers(item)
		}
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		// Out of int64 range or fractional
		f, _ := v.Float64()
		return f
	default:
		return v
	}
}

// ClientID returns the client identifier
func (c *Client) ClientID() string {
	return c.builder.ClientID()
}

// Transport returns the transport requests are dispatched through
func (c *Client) Transport() interfaces.Transport {
	return c.deps.Transport
}
