package errors

import "errors"

// asPlatformError converts err to a PlatformError, wrapping standard errors
// with CodeUnknown.
func asPlatformError(err error) PlatformError {
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		return platformErr
	}
	return &platformError{
		code:     CodeUnknown,
		severity: SeverityRecoverable,
		message:  err.Error(),
		cause:    err,
	}
}

// WithContext adds a single context field to an error.
// Returns a new PlatformError with the context field added.
// Existing context fields are preserved.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidConfig, "invalid configuration")
//	err = errors.WithContext(err, "field", "max_frames")
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}

	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// Existing context fields are preserved; new fields override existing ones with the same key.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	platformErr := asPlatformError(err)

	newContext := make(map[string]interface{})
	for k, v := range platformErr.Context() {
		newContext[k] = v
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &platformError{
		code:     platformErr.Code(),
		severity: platformErr.Severity(),
		message:  platformErr.Message(),
		context:  newContext,
		cause:    platformErr.Unwrap(),
	}
}

// WithSeverity overrides the severity of an error.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	// A raised error that nothing claimed ends the program.
//	err = errors.WithSeverity(err, errors.SeverityFatal)
func WithSeverity(err error, severity Severity) PlatformError {
	if err == nil {
		return nil
	}

	platformErr := asPlatformError(err)

	return &platformError{
		code:     platformErr.Code(),
		severity: severity,
		message:  platformErr.Message(),
		context:  platformErr.Context(),
		cause:    platformErr.Unwrap(),
	}
}
