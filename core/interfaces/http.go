package interfaces

import (
	"context"
	"net/http"

	"upwind24-go/core/domain"
)

// Transport dispatches a built request.
// This abstraction allows for easy mocking in tests and switching between
// different transport implementations (standard library, caching, etc.)
type Transport interface {
	// Send performs the request and returns whatever response the server
	// produced. Error statuses (4xx, 5xx) are returned as a Response.
	// The error is reserved for network level failures.
	Send(ctx context.Context, req *domain.OutboundRequest) (Response, error)
}

// Response defines the interface for HTTP responses.
// Implementations read the body fully before returning, so a Response can
// be inspected any number of times and needs no closing.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the raw response body.
	Body() []byte

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string

	// Headers returns all response headers.
	Headers() http.Header
}
