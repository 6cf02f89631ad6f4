package exceptions

import (
	"context"

	"github.com/jmgilman/go/exceptions/errors"
)

type runtimeKey struct{}

// WithRuntime returns a copy of ctx carrying r. Use it to hand a goroutine
// its own runtime alongside the rest of its request-scoped values.
func WithRuntime(ctx context.Context, r *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, r)
}

// FromContext returns the runtime carried by ctx. It returns CodeNoContext
// if none was attached.
func FromContext(ctx context.Context) (*Runtime, error) {
	r, ok := ctx.Value(runtimeKey{}).(*Runtime)
	if !ok || r == nil {
		return nil, errors.New(errors.CodeNoContext, "no runtime attached to context")
	}
	return r, nil
}
