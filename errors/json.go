package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure of a PlatformError.
// The wrapped error chain is intentionally excluded.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Severity indicates whether the error is recoverable or fatal.
	Severity string `json:"severity"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For standard errors, uses CodeUnknown, SeverityRecoverable, and the error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var platformErr PlatformError
	if As(err, &platformErr) {
		message = platformErr.Message()
		context = platformErr.Context()
	}

	return &ErrorResponse{
		Code:     string(GetCode(err)),
		Message:  message,
		Severity: string(GetSeverity(err)),
		Context:  context,
	}
}

// MarshalJSON implements json.Marshaler for platformError.
//
// Example:
//
//	err := errors.New(errors.CodeNoError, "no error has been raised")
//	jsonBytes, _ := json.Marshal(err)
//	// Output: {"code":"NO_ERROR","message":"no error has been raised","severity":"RECOVERABLE"}
func (e *platformError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Code:     string(e.code),
		Message:  e.message,
		Severity: string(e.severity),
		Context:  e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, &platformError{
			code:     CodeInternal,
			severity: SeverityFatal,
			message:  "failed to marshal error response",
			cause:    err,
		}
	}
	return data, nil
}
