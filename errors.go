// ABOUTME: Error types and handling for the Upwind24 client
// ABOUTME: Structured configuration errors plus helpers for core error kinds

package upwind24

import (
	"errors"
	"fmt"

	coreerrors "upwind24-go/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeConfiguration indicates an invalid client option or setting
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// InvalidParameterError is returned for missing credentials and
// unserializable content
type InvalidParameterError = coreerrors.InvalidParameterError

// TransportError is returned when a request could not be completed at
// the network level
type TransportError = coreerrors.TransportError

// IsInvalidParameter checks if an error is an invalid parameter error
func IsInvalidParameter(err error) bool {
	return coreerrors.IsInvalidParameter(err)
}

// IsTransportError checks if an error is a transport failure
func IsTransportError(err error) bool {
	return coreerrors.IsTransport(err)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeConfiguration
}
