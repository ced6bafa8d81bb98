package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey is the private type for context keys used by this package.
type ctxKey struct{}

// loggerCtxKey is the key under which a logger travels in a context.
//
//nolint:gochecknoglobals // Package-level context key is idiomatic
var loggerCtxKey = ctxKey{}

// FromContext retrieves the Logger carried by ctx, falling back to the
// default logger. Library code deep in the pipeline logs through this so
// the CLI controls verbosity without threading a logger parameter around.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger returns a context with the given logger attached.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerCtxKey, logger)
}
