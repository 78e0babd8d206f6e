// Package core contains the request construction logic of the Upwind24
// client. It is independent of any HTTP client implementation.
//
// The core package is organized into several sub-packages:
//
// - domain: credentials, endpoint configuration and the outbound request
// - signing: the X-U24-Signature scheme
// - request: the Builder turning call arguments into signed requests
// - errors: typed errors for invalid input and transport failures
// - interfaces: contracts for external dependencies (transport, cache, logger)
//
// # Usage Example
//
//	builder, err := request.NewBuilder(
//	    domain.Credentials{ClientID: "abc", SecretID: "xyz"},
//	    domain.DefaultEndpointConfig(),
//	)
//	req, err := builder.Build("GET", "/users/1", nil, true, nil)
//	// req.URL == "http://dev-api.upwind24.com/v1.0/users/1"
package core
