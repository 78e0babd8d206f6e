// ABOUTME: Request domain model shared by the builder, transports and the public client
// ABOUTME: Holds credentials, endpoint configuration and the outbound request value

package domain

import (
	"net/http"
)

const (
	// DefaultEndpoint is the base URL used when none is configured
	DefaultEndpoint = "http://dev-api.upwind24.com"

	// DefaultVersion is the API version segment used when none is configured
	DefaultVersion = "v1.0"

	// ContentTypeJSON is sent on every request
	ContentTypeJSON = "application/json; charset=utf-8"

	// HeaderClient carries the client identifier on authenticated requests
	HeaderClient = "X-U24-Client"

	// HeaderSignature carries the request signature on authenticated requests
	HeaderSignature = "X-U24-Signature"
)

// Credentials identify an API consumer. Both fields are required.
type Credentials struct {
	ClientID string
	SecretID string
}

// EndpointConfig is the base URL and API version of a client instance
type EndpointConfig struct {
	Endpoint string
	Version  string
}

// DefaultEndpointConfig returns the production defaults
func DefaultEndpointConfig() EndpointConfig {
	return EndpointConfig{
		Endpoint: DefaultEndpoint,
		Version:  DefaultVersion,
	}
}

// OutboundRequest is a fully built request, ready for a transport
type OutboundRequest struct {
	// Method is the uppercase HTTP verb
	Method string

	// URL is the resolved endpoint + version + path, including any query string
	URL string

	// Header always contains Content-Type and, for authenticated calls,
	// the client and signature headers
	Header http.Header

	// Body is the JSON payload; empty for GET and for calls without content
	Body []byte
}

// Param is a single query or body entry
type Param struct {
	Key   string
	Value any
}

// Params is an ordered set of request parameters. Query strings built
// from Params keep the order in which entries were added.
type Params []Param

// Add returns p extended with a key/value pair. p itself is never
// modified, so several Params may be built from one base.
func (p Params) Add(key string, value any) Params {
	return append(p[:len(p):len(p)], Param{Key: key, Value: value})
}

// MarshalJSON encodes Params as a JSON object in insertion order
func (p Params) MarshalJSON() ([]byte, error) {
	return marshalOrdered(p)
}
