package xcontext

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey{}).(string)
	return requestID, ok
}

// EnsureRequestID returns ctx unchanged if it already carries a request ID,
// otherwise it attaches a fresh one.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := GetRequestID(ctx); ok && id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return SetRequestID(ctx, id), id
}
