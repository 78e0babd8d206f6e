// ABOUTME: Builds signed outbound requests from a method, path and optional content
// ABOUTME: GET content becomes query parameters, other verbs carry a JSON body

package request

import (
	"net/http"
	"strings"

	"upwind24-go/core/domain"
	coreerrors "upwind24-go/core/errors"
	"upwind24-go/core/signing"
)

// Builder turns call arguments into an OutboundRequest. It holds only
// immutable configuration and is safe for concurrent use.
type Builder struct {
	creds    domain.Credentials
	endpoint domain.EndpointConfig
}

// ValidateCredentials checks that both identifiers are present
func ValidateCredentials(creds domain.Credentials) error {
	if creds.ClientID == "" {
		return coreerrors.NewInvalidParameter("clientId", "API client identifier not provided")
	}
	if creds.SecretID == "" {
		return coreerrors.NewInvalidParameter("secretId", "API secret identifier not provided")
	}
	return nil
}

// NewBuilder validates the credentials and returns a Builder
func NewBuilder(creds domain.Credentials, endpoint domain.EndpointConfig) (*Builder, error) {
	if err := ValidateCredentials(creds); err != nil {
		return nil, err
	}

	return &Builder{
		creds:    creds,
		endpoint: endpoint,
	}, nil
}

// ClientID returns the client identifier requests are signed with
func (b *Builder) ClientID() string {
	return b.creds.ClientID
}

// Endpoint returns the endpoint configuration
func (b *Builder) Endpoint() domain.EndpointConfig {
	return b.endpoint
}

// ResolveURL joins endpoint, version and path with exactly one slash
// between each segment
func (b *Builder) ResolveURL(path string) string {
	return strings.TrimRight(b.endpoint.Endpoint, "/") + "/" +
		strings.Trim(b.endpoint.Version, "/") + "/" +
		strings.TrimLeft(path, "/")
}

// Build assembles the request. Extra headers never override Content-Type
// or the signature headers.
func (b *Builder) Build(method, path string, content any, requiresAuth bool, extraHeaders map[string]string) (*domain.OutboundRequest, error) {
	method = strings.ToUpper(method)
	req := &domain.OutboundRequest{
		Method: method,
		URL:    b.ResolveURL(path),
		Header: make(http.Header),
	}

	if !isEmpty(content) {
		if method == http.MethodGet {
			query, err := b.mergeQuery(req.URL, content)
			if err != nil {
				return nil, err
			}
			req.URL = withQuery(req.URL, query)
		} else {
			body, err := encodeBody(content)
			if err != nil {
				return nil, err
			}
			req.Body = body
		}
	}

	for key, value := range extraHeaders {
		req.Header.Set(key, value)
	}

	req.Header.Set("Content-Type", domain.ContentTypeJSON)
	if requiresAuth {
		for key, value := range signing.Headers(b.creds, method, path) {
			req.Header.Set(key, value)
		}
	}

	return req, nil
}

// mergeQuery overlays content on the query already present in rawURL
func (b *Builder) mergeQuery(rawURL string, content any) (string, error) {
	params, err := toParams(content)
	if err != nil {
		return "", err
	}

	existing := parseQuery(queryOf(rawURL))
	return encodeQuery(existing.Merge(params)), nil
}
