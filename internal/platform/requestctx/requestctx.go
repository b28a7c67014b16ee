// Package requestctx carries the per-request correlation ID through a
// context.Context so log lines and response envelopes agree on the value.
package requestctx

import "context"

type requestIDKey struct{}

// WithRequestID returns a child context tagged with id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID reports the ID stored by WithRequestID, or "" when the
// context was never tagged.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
