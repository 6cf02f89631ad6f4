package errors

import "fmt"

// New creates a new PlatformError with the given code and message.
// The severity is determined by the error code using default mappings.
//
// Example:
//
//	err := errors.New(errors.CodeNoError, "no error has been raised")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:     code,
		severity: getDefaultSeverity(code),
		message:  message,
	}
}

// Newf creates a new PlatformError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidConfig, "max_frames must be positive, got %d", n)
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}

// NewWithContext creates a new PlatformError and attaches context metadata.
// The context map is copied to prevent external mutation.
func NewWithContext(code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	return &platformError{
		code:     code,
		severity: getDefaultSeverity(code),
		message:  message,
		context:  copyContext(ctx),
	}
}
