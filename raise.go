package exceptions

import (
	"fmt"

	"github.com/jmgilman/go/exceptions/errors"
)

const (
	uncaughtFormat         = "\n\nError: %s (%s)\n\n"
	uncaughtLocationFormat = "\n\nUncaught %s: %s\n\n    thrown at %s:%d\n\n"
)

// unwind is the panic value that carries control from a raise back to the
// resumption point of the frame at depth.
type unwind struct {
	r     *Runtime
	depth int
}

// Termination is the panic value Raise uses when the exit function installed
// with WithExit returns instead of ending the process.
type Termination struct {
	// Code is the exit status passed to the exit function.
	Code int

	// Err is the error that escaped every protected block.
	Err Error
}

func (t *Termination) Error() string {
	return fmt.Sprintf("terminated with status %d: %s", t.Code, t.Err)
}

// Raise raises an error of type t at the caller's location. A nil type
// raises NullReferenceError and an empty message uses the type's default, so
// an error cannot be raised with an empty message.
// Raise does not return: control moves to the innermost protected block, or
// the process terminates if there is none.
func (r *Runtime) Raise(t *Type, msg string) {
	r.RaiseAt(t, r.caller(1), msg)
}

// Raisef is Raise with a formatted message.
func (r *Runtime) Raisef(t *Type, format string, args ...interface{}) {
	r.RaiseAt(t, r.caller(1), fmt.Sprintf(format, args...))
}

// RaiseAt is Raise with an explicit location. The location is dropped when
// provenance is disabled.
func (r *Runtime) RaiseAt(t *Type, loc *Location, msg string) {
	if t == nil {
		t = NullReferenceError
	}
	if msg == "" {
		msg = t.defaultMessage
	}
	if !r.cfg.Provenance {
		loc = nil
	}

	r.current.store(t, loc, msg)
	r.logger.Debug("error raised", "type", t, "location", loc, "depth", len(r.frames))

	r.propagate()
}

// propagate flags the innermost frame and unwinds to its resumption point.
func (r *Runtime) propagate() {
	f := r.top()
	if f == nil {
		r.terminate()
	}

	f.uncaught = true
	panic(&unwind{r: r, depth: len(r.frames)})
}

// terminate prints the uncaught-error diagnostic and exits with status 1.
func (r *Runtime) terminate() {
	e := r.current.snapshot()
	r.logger.Error("uncaught error",
		"error", errors.Wrap(e.Err(), errors.CodeUncaught, "error escaped every protected block"))

	if e.Location == nil {
		_, _ = fmt.Fprintf(r.stderr, uncaughtFormat, e.Type.Name(), e.Message)
	} else {
		_, _ = fmt.Fprintf(r.stderr, uncaughtLocationFormat, e.Type.Name(), e.Message, e.Location.File, e.Location.Line)
	}

	r.exit(1)
	panic(&Termination{Code: 1, Err: e})
}
