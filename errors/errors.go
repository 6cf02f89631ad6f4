package errors

// ErrorCode represents a specific failure condition of the runtime.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string
