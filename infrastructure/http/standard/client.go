// ABOUTME: Standard HTTP transport with timeouts, optional rate limiting and GET retries
// ABOUTME: Returns every received status as a response; only network failures are errors

package standard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"upwind24-go/core/domain"
	coreerrors "upwind24-go/core/errors"
	"upwind24-go/core/interfaces"
)

const (
	// DefaultTimeout bounds a whole request
	DefaultTimeout = 30 * time.Second

	// DefaultConnectTimeout bounds establishing a connection
	DefaultConnectTimeout = 5 * time.Second

	maxBackoff = 5 * time.Second

	userAgent = "upwind24-go/1.0"
)

// Options configures a StandardTransport
type Options struct {
	// Timeout is the overall request timeout
	Timeout time.Duration

	// ConnectTimeout is the dial timeout
	ConnectTimeout time.Duration

	// RateLimit is the maximum number of requests per second; 0 disables it
	RateLimit float64

	// MaxRetries is the number of additional GET attempts on network
	// errors and 5xx responses
	MaxRetries int
}

// DefaultOptions returns the default transport options
func DefaultOptions() Options {
	return Options{
		Timeout:        DefaultTimeout,
		ConnectTimeout: DefaultConnectTimeout,
	}
}

// StandardTransport implements the Transport interface using net/http
type StandardTransport struct {
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries int
}

// NewStandardTransport creates a transport with its own connection pool
func NewStandardTransport(opts Options) *StandardTransport {
	dialer := &net.Dialer{
		Timeout:   opts.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext

	return NewStandardTransportWithClient(&http.Client{
		Timeout:   opts.Timeout,
		Transport: transport,
	}, opts)
}

// NewStandardTransportWithClient wraps an existing http.Client. Timeouts
// in opts are ignored; the client's own settings apply.
func NewStandardTransportWithClient(client *http.Client, opts Options) *StandardTransport {
	t := &StandardTransport{
		client:     client,
		maxRetries: opts.MaxRetries,
	}

	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit)
		if burst < 1 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return t
}

// HTTPClient returns the underlying http.Client
func (t *StandardTransport) HTTPClient() *http.Client {
	return t.client
}

// Send performs the request
func (t *StandardTransport) Send(ctx context.Context, req *domain.OutboundRequest) (interfaces.Response, error) {
	attempts := 1
	if req.Method == http.MethodGet {
		attempts += t.maxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff(attempt)):
			case <-ctx.Done():
				return nil, coreerrors.NewTransportError(req.Method, req.URL, ctx.Err())
			}
		}

		resp, err := t.do(ctx, req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode() < 500 || attempt == attempts-1 {
			return resp, nil
		}
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode())
	}

	return nil, coreerrors.NewTransportError(req.Method, req.URL, lastErr)
}

// backoff doubles from 100ms per attempt and is capped at maxBackoff
func backoff(attempt int) time.Duration {
	d := 100 * time.Millisecond
	for i := 1; i < attempt && d < maxBackoff; i++ {
		d *= 2
	}
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

// do performs a single attempt and reads the whole body
func (t *StandardTransport) do(ctx context.Context, req *domain.OutboundRequest) (*httpResponse, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	for key, values := range req.Header {
		httpReq.Header[key] = append([]string(nil), values...)
	}
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       data,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       []byte
	headers    http.Header
}

// NewResponse builds a Response from already received parts
func NewResponse(statusCode int, body []byte, headers http.Header) interfaces.Response {
	if headers == nil {
		headers = make(http.Header)
	}
	return &httpResponse{
		statusCode: statusCode,
		body:       body,
		headers:    headers,
	}
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() []byte {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// Headers returns all response headers
func (r *httpResponse) Headers() http.Header {
	return r.headers
}
