package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a PlatformError.
//
// Example:
//
//	if _, err := exceptions.Current(); errors.GetCode(err) == errors.CodeNoError {
//	    // nothing has been raised yet
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}

	return CodeUnknown
}

// GetSeverity extracts the Severity from an error.
// Returns SeverityRecoverable if the error is nil or not a PlatformError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityRecoverable
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Severity()
	}

	return SeverityRecoverable
}

// IsFatal returns true if the error is classified as fatal.
func IsFatal(err error) bool {
	return GetSeverity(err).IsFatal()
}
