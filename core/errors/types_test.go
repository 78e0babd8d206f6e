package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestInvalidParameterError_Error(t *testing.T) {
	err := NewInvalidParameter("clientId", "API client identifier not provided")

	expected := "invalid parameter 'clientId': API client identifier not provided"
	if err.Error() != expected {
		t.Errorf("InvalidParameterError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestInvalidParameterError_ErrorWithCause(t *testing.T) {
	err := &InvalidParameterError{
		Parameter: "content",
		Message:   "cannot encode",
		Cause:     errors.New("unsupported type"),
	}

	expected := "invalid parameter 'content': cannot encode: unsupported type"
	if err.Error() != expected {
		t.Errorf("InvalidParameterError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestTransportError_Error(t *testing.T) {
	err := NewTransportError("GET", "http://example.com/v1.0/users", errors.New("connection refused"))

	expected := "transport error on GET http://example.com/v1.0/users: connection refused"
	if err.Error() != expected {
		t.Errorf("TransportError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestTransportError_UnwrapsCause(t *testing.T) {
	err := NewTransportError("GET", "http://example.com", context.DeadlineExceeded)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("TransportError should unwrap to its cause")
	}
}

func TestIsInvalidParameter(t *testing.T) {
	if !IsInvalidParameter(NewInvalidParameter("secretId", "missing")) {
		t.Error("IsInvalidParameter should return true for InvalidParameterError")
	}

	if IsInvalidParameter(errors.New("some other error")) {
		t.Error("IsInvalidParameter should return false for other errors")
	}

	wrapped := fmt.Errorf("failed to create client: %w", NewInvalidParameter("clientId", "missing"))
	if !IsInvalidParameter(wrapped) {
		t.Error("IsInvalidParameter should return true for wrapped InvalidParameterError")
	}
}

func TestIsTransport(t *testing.T) {
	if !IsTransport(NewTransportError("POST", "http://example.com", errors.New("eof"))) {
		t.Error("IsTransport should return true for TransportError")
	}

	if IsTransport(NewInvalidParameter("clientId", "missing")) {
		t.Error("IsTransport should return false for InvalidParameterError")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := NewInvalidParameter("clientId", "missing")
	wrappedErr := WrapError(originalErr, "failed to create client")

	expectedMsg := "failed to create client: invalid parameter 'clientId': missing"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}

	if !IsInvalidParameter(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as InvalidParameterError")
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	if WrapError(nil, "this should not happen") != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
