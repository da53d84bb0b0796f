package credentials

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

var (
	// ErrInvalidCredentials is returned when the email/password pair is rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTimeout is returned when a submission does not settle in time.
	ErrTimeout = errors.New("submission timed out")
)

// ErrorType represents the category of a submission failure
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (connection refused, DNS, ...)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request did not complete in time
	ErrTypeTimeout
	// ErrTypeAuth indicates the credentials were rejected
	ErrTypeAuth
	// ErrTypeHTTP indicates an unexpected HTTP status
	ErrTypeHTTP
	// ErrTypeValidation indicates the request was not well formed
	ErrTypeValidation
	// ErrTypeStore indicates the local accounts file could not be used
	ErrTypeStore
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeAuth:
		return "Authentication Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeStore:
		return "Account Store Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is a categorized submission failure.
type Error struct {
	Type       ErrorType
	Message    string
	StatusCode int   // HTTP status, when applicable
	Err        error // underlying cause
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns a short message suitable for the status line of the form.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return "Email or password is incorrect"
	case errors.Is(err, ErrTimeout):
		return "The server took too long to answer"
	}

	var ce *Error
	if errors.As(err, &ce) {
		switch ce.Type {
		case ErrTypeNetwork:
			return "Could not reach the server"
		case ErrTypeTimeout:
			return "The server took too long to answer"
		case ErrTypeValidation:
			return "Enter a valid email address"
		case ErrTypeHTTP:
			return fmt.Sprintf("Server error (%d)", ce.StatusCode)
		case ErrTypeStore:
			return "Account store is unavailable"
		}
	}
	return "Sign-in failed"
}

// classifyTransportError maps an error from http.Client.Do to an *Error.
func classifyTransportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &Error{Type: ErrTypeTimeout, Message: "request timed out", Err: errors.Join(ErrTimeout, err)}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Type: ErrTypeTimeout, Message: "request timed out", Err: errors.Join(ErrTimeout, err)}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{Type: ErrTypeNetwork, Message: "cannot resolve " + dnsErr.Name, Err: err}
	}

	return &Error{Type: ErrTypeNetwork, Message: "server unreachable", Err: err}
}
