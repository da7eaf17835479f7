// Package middleware carries request-scoped state across a battery
// run: today that's just a correlation id for log lines, the pattern
// the original gRPC interceptor stack used for every request.
package middleware

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID returns a context carrying id as the request's
// correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// NewRequestContext returns a context carrying a freshly minted
// correlation id, plus the id itself for the caller to log.
func NewRequestContext(ctx context.Context) (context.Context, string) {
	id := uuid.New().String()
	return WithRequestID(ctx, id), id
}

// RequestIDFromContext returns ctx's correlation id, minting and
// returning a fresh one if ctx doesn't carry one.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}
