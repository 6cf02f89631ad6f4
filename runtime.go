package exceptions

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/jmgilman/go/exceptions/config"
	"github.com/jmgilman/go/exceptions/errors"
)

// Runtime owns one frame stack and one current-error slot. A Runtime must
// only be used from one goroutine at a time; give each goroutine its own.
type Runtime struct {
	cfg       config.Config
	frames    []frame
	current   slot
	logger    *slog.Logger
	stderr    io.Writer
	exit      func(code int)
	onFailure func(Error)
}

// Option configures a Runtime at construction.
type Option func(*Runtime)

// WithConfig sizes the runtime. The configuration is validated by New.
func WithConfig(cfg config.Config) Option {
	return func(r *Runtime) {
		r.cfg = cfg
	}
}

// WithLogger sets the structured logger. Block lifecycle events are logged
// at debug level and uncaught errors at error level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithStderr sets the stream the uncaught-error diagnostic is written to.
func WithStderr(w io.Writer) Option {
	return func(r *Runtime) {
		r.stderr = w
	}
}

// WithExit replaces os.Exit as the termination function.
func WithExit(exit func(code int)) Option {
	return func(r *Runtime) {
		r.exit = exit
	}
}

// WithFailureHandler sets the callback invoked by Assert when a check fails.
func WithFailureHandler(fn func(Error)) Option {
	return func(r *Runtime) {
		r.onFailure = fn
	}
}

// New creates a Runtime. It returns CodeInvalidConfig if the configuration
// supplied through WithConfig is out of range.
func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{
		cfg:    config.Default(),
		logger: slog.New(slog.DiscardHandler),
		stderr: os.Stderr,
		exit:   os.Exit,
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := config.Validate(context.Background(), r.cfg); err != nil {
		return nil, err
	}

	r.frames = make([]frame, 0, r.cfg.MaxFrames)
	r.current = newSlot(r.cfg.MessageSize)

	return r, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(opts ...Option) *Runtime {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Config returns the configuration the runtime was built with.
func (r *Runtime) Config() config.Config {
	return r.cfg
}

// Current returns a snapshot of the most recently raised error. It returns
// CodeNoError if nothing has been raised on this runtime yet.
func (r *Runtime) Current() (Error, error) {
	if !r.current.set {
		return Error{}, errors.New(errors.CodeNoError, "no error has been raised")
	}
	return r.current.snapshot(), nil
}

// IsCurrentKindOf reports whether the current error is of type t or one of
// its descendants. It is false if nothing has been raised.
func (r *Runtime) IsCurrentKindOf(t *Type) bool {
	return r.current.set && IsKindOf(r.current.typ, t)
}

// caller returns the location skip frames above the caller of caller, or nil
// when provenance is disabled.
func (r *Runtime) caller(skip int) *Location {
	if !r.cfg.Provenance {
		return nil
	}
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}
	return &Location{File: file, Line: line}
}
