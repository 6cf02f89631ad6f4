package errors

import "fmt"

// PlatformError extends the standard error interface with structured information.
//
// PlatformError provides error codes for categorization, a severity telling
// callers whether the failure is fatal, contextual metadata, and compatibility
// with standard library error handling (errors.Is, errors.As, errors.Unwrap).
type PlatformError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Severity returns whether the error is recoverable or fatal.
	Severity() Severity

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}

// platformError is the concrete implementation of PlatformError.
// It is private to enforce construction through package functions.
type platformError struct {
	code     ErrorCode
	severity Severity
	message  string
	context  map[string]interface{}
	cause    error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *platformError) Code() ErrorCode {
	return e.code
}

func (e *platformError) Severity() Severity {
	return e.severity
}

func (e *platformError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none was attached.
func (e *platformError) Context() map[string]interface{} {
	return copyContext(e.context)
}

func (e *platformError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
