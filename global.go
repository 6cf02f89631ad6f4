package exceptions

import "fmt"

var defaultRuntime = MustNew()

// Default returns the process-wide runtime used by the package-level
// functions. It is not safe for concurrent use.
func Default() *Runtime {
	return defaultRuntime
}

// Try starts a protected block on the default runtime.
func Try(body func()) *Block {
	return &Block{r: defaultRuntime, loc: defaultRuntime.caller(1), body: body}
}

// Raise raises an error on the default runtime. See Runtime.Raise.
func Raise(t *Type, msg string) {
	defaultRuntime.RaiseAt(t, defaultRuntime.caller(1), msg)
}

// Raisef raises an error with a formatted message on the default runtime.
func Raisef(t *Type, format string, args ...interface{}) {
	defaultRuntime.RaiseAt(t, defaultRuntime.caller(1), fmt.Sprintf(format, args...))
}

// RaiseAt raises an error with an explicit location on the default runtime.
func RaiseAt(t *Type, loc *Location, msg string) {
	defaultRuntime.RaiseAt(t, loc, msg)
}

// Current returns the current error of the default runtime.
func Current() (Error, error) {
	return defaultRuntime.Current()
}

// IsCurrentKindOf reports whether the default runtime's current error is of type t.
func IsCurrentKindOf(t *Type) bool {
	return defaultRuntime.IsCurrentKindOf(t)
}

// Assert runs Runtime.Assert on the default runtime.
func Assert(cond bool, msg string) {
	defaultRuntime.assert(cond, msg, RuntimeError, defaultRuntime.caller(1))
}
