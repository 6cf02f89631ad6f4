package errors

const (
	// Propagation errors.

	// CodeRaised marks a Go error converted from an error raised inside a
	// protected block.
	CodeRaised ErrorCode = "RAISED"

	// CodeUncaught indicates an error escaped every enclosing protected block.
	CodeUncaught ErrorCode = "UNCAUGHT"

	// CodeFrameOverflow indicates protected blocks were nested deeper than the
	// configured maximum.
	CodeFrameOverflow ErrorCode = "FRAME_OVERFLOW"

	// State errors.

	// CodeNoError indicates the current error was read before anything was raised.
	CodeNoError ErrorCode = "NO_ERROR"

	// CodeNoContext indicates no runtime instance is attached to a context.Context.
	CodeNoContext ErrorCode = "NO_CONTEXT"

	// Configuration errors.

	// CodeInvalidConfig indicates the runtime configuration failed validation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeConfigLoad indicates a configuration source could not be read or decoded.
	CodeConfigLoad ErrorCode = "CONFIG_LOAD_FAILED"

	// System errors.

	// CodeInternal indicates an internal runtime error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
