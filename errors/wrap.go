package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is a PlatformError, its severity is preserved.
// Otherwise, the default severity for the error code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := fsys.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeConfigLoad, "failed to read config")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	severity := getDefaultSeverity(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		severity = platformErr.Severity()
	}

	return &platformError{
		code:     code,
		severity: severity,
		message:  message,
		context:  copyContext(ctx),
		cause:    err,
	}
}
