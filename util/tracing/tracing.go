package tracing

import (
	"context"

	"github.com/lucsky/cuid"
	"github.com/simplerentals/rentals-go/util/values"
)

// Context identifies a single logical request as it travels from the
// client through the marketplace API.
type Context struct {
	RequestID     string
	RequestSource string
}

// New returns a tracing context with a fresh request id.
func New(source string) Context {
	return Context{
		RequestID:     cuid.New(),
		RequestSource: source,
	}
}

// FromContext returns the tracing context stored by the middleware, or a
// zero Context if none was attached.
func FromContext(ctx context.Context) Context {
	tc, _ := ctx.Value(values.ContextTracingKey).(Context)
	return tc
}

// WithContext attaches tc to ctx.
func WithContext(ctx context.Context, tc Context) context.Context {
	return context.WithValue(ctx, values.ContextTracingKey, tc)
}
