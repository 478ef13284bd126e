package supabase

import "fmt"

// ErrorType categorizes the failures this layer can produce itself. Every
// other failure (HTTP statuses, timeouts, WebSocket drops) originates in a
// wrapped client and is returned unchanged.
type ErrorType string

const (
	// ErrorTypeInvalidConfiguration marks bad caller input: an empty or
	// malformed base URL, API key, or JWT. Never retried.
	ErrorTypeInvalidConfiguration ErrorType = "invalid_configuration"

	// ErrorTypeClientInit marks a failure constructing one of the wrapped
	// clients, e.g. a malformed header value. Fatal to the construction call.
	ErrorTypeClientInit ErrorType = "client_init"
)

// Error is a structured SDK error.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewInvalidConfigurationError creates an invalid configuration error.
func NewInvalidConfigurationError(message string, cause ...error) *Error {
	var c error
	if len(cause) > 0 {
		c = cause[0]
	}
	return &Error{
		Type:    ErrorTypeInvalidConfiguration,
		Message: message,
		Cause:   c,
	}
}

// NewClientInitError creates a client initialization error.
func NewClientInitError(message string, cause error) *Error {
	return &Error{
		Type:    ErrorTypeClientInit,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if the error is of a specific type.
func IsType(err error, errorType ErrorType) bool {
	if sdkErr, ok := err.(*Error); ok {
		return sdkErr.Type == errorType
	}
	return false
}
