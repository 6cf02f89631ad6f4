package errors

// Severity indicates whether the program can continue after an error.
type Severity string

const (
	// SeverityRecoverable marks errors a caller can handle and move past.
	// Examples: a raised error claimed by a catch clause, a bad config file.
	SeverityRecoverable Severity = "RECOVERABLE"

	// SeverityFatal marks errors that end the program when they escape.
	// Examples: block overflow, an error that escaped the outermost block.
	SeverityFatal Severity = "FATAL"
)

// IsFatal returns true if the severity terminates the program.
func (s Severity) IsFatal() bool {
	return s == SeverityFatal
}

// defaultSeverities maps error codes to their default severity.
var defaultSeverities = map[ErrorCode]Severity{
	CodeUncaught:      SeverityFatal,
	CodeFrameOverflow: SeverityFatal,
	CodeInternal:      SeverityFatal,

	CodeRaised:        SeverityRecoverable,
	CodeNoError:       SeverityRecoverable,
	CodeNoContext:     SeverityRecoverable,
	CodeInvalidConfig: SeverityRecoverable,
	CodeConfigLoad:    SeverityRecoverable,
	CodeUnknown:       SeverityRecoverable,
}

// getDefaultSeverity returns the default severity for an error code.
// Unknown codes are recoverable.
func getDefaultSeverity(code ErrorCode) Severity {
	if s, ok := defaultSeverities[code]; ok {
		return s
	}
	return SeverityRecoverable
}
