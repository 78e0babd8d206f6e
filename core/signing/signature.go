// ABOUTME: Request signature used by the Upwind24 API to authenticate clients
// ABOUTME: SHA-1 over client id, secret, method and normalized path

package signing

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"upwind24-go/core/domain"
)

// NormalizePath lowercases a path and trims its leading and trailing
// slashes. Only ASCII letters change case; the server folds bytes the
// same way.
func NormalizePath(path string) string {
	return strings.Trim(strings.Map(asciiLower, path), "/")
}

// Payload returns the string that gets hashed for a request
func Payload(creds domain.Credentials, method, path string) string {
	return creds.ClientID + "+" + creds.SecretID + "+" + strings.Map(asciiUpper, method) + "+/" + NormalizePath(path)
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// Sign returns the hex encoded signature for a request. The result only
// depends on the credentials, the method and the path.
func Sign(creds domain.Credentials, method, path string) string {
	sum := sha1.Sum([]byte(Payload(creds, method, path)))
	return hex.EncodeToString(sum[:])
}

// Headers returns the authentication headers for a request
func Headers(creds domain.Credentials, method, path string) map[string]string {
	return map[string]string{
		domain.HeaderClient:    creds.ClientID,
		domain.HeaderSignature: Sign(creds, method, path),
	}
}
