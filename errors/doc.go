// Package errors provides the structured Go errors of the exceptions runtime.
//
// Raised errors travel through protected blocks; everything else the runtime
// reports (reading the current error before anything was raised, a bad
// configuration file, converting a claimed error for a caller that expects a
// Go error) comes back as a PlatformError. A PlatformError carries a code, a
// severity, an optional context map, and an optional cause. It works with the
// standard library errors.Is, errors.As and errors.Unwrap.
//
// # Creating errors
//
//	err := errors.New(errors.CodeNoError, "no error has been raised")
//	err := errors.Newf(errors.CodeInvalidConfig, "max_frames out of range: %d", n)
//
// # Wrapping errors
//
//	data, err := fsys.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeConfigLoad, "failed to read config")
//	}
//
// # Severity
//
// Every code has a default severity. Block overflow and uncaught errors are
// fatal; the rest are recoverable. Severity survives wrapping and can be
// overridden with WithSeverity.
//
// # JSON
//
// ToJSON and MarshalJSON flatten an error into code, message, severity and
// context. The cause chain is not serialized.
package errors
