// ABOUTME: Public types for the Upwind24 client API
// ABOUTME: Aliases of core types so callers need a single import

package upwind24

import (
	"upwind24-go/core/domain"
	"upwind24-go/core/interfaces"
)

// Response is a received HTTP response, whatever its status
type Response = interfaces.Response

// Transport dispatches built requests
type Transport = interfaces.Transport

// Logger receives the client's structured log output
type Logger = interfaces.Logger

// Cache stores responses for the optional response cache
type Cache = interfaces.Cache

// OutboundRequest is a signed request handed to a Transport
type OutboundRequest = domain.OutboundRequest

// Params is an ordered set of parameters. Use it when query order matters.
type Params = domain.Params

// Param is a single entry of Params
type Param = domain.Param

const (
	// DefaultEndpoint is the API base URL used when none is configured
	DefaultEndpoint = domain.DefaultEndpoint

	// DefaultVersion is the API version used when none is configured
	DefaultVersion = domain.DefaultVersion
)
