// ABOUTME: Custom error types for request construction and dispatch
// ABOUTME: Separates invalid input from transport failures so callers can branch with errors.As

package errors

import (
	"errors"
	"fmt"
)

// InvalidParameterError reports a missing or unusable argument
type InvalidParameterError struct {
	Parameter string
	Message   string
	Cause     error
}

// Error implements the error interface
func (e *InvalidParameterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid parameter '%s': %s: %v", e.Parameter, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid parameter '%s': %s", e.Parameter, e.Message)
}

// Unwrap returns the underlying cause
func (e *InvalidParameterError) Unwrap() error {
	return e.Cause
}

// TransportError represents a network level failure. A response with an
// error status is not a TransportError.
type TransportError struct {
	Method string
	URL    string
	Cause  error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on %s %s: %v", e.Method, e.URL, e.Cause)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// NewInvalidParameter creates an InvalidParameterError
func NewInvalidParameter(parameter, message string) *InvalidParameterError {
	return &InvalidParameterError{Parameter: parameter, Message: message}
}

// NewTransportError wraps a network failure
func NewTransportError(method, url string, cause error) *TransportError {
	return &TransportError{Method: method, URL: url, Cause: cause}
}

// IsInvalidParameter checks if an error is an InvalidParameterError
func IsInvalidParameter(err error) bool {
	var paramErr *InvalidParameterError
	return errors.As(err, &paramErr)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
