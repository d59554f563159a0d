package xslog

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// WithLogger stores logger on ctx. A nil logger leaves ctx as it is.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored on ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// WithAttrs derives a logger carrying attrs and stores it on ctx.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// WithRequest tags every record logged under ctx with one API call.
func WithRequest(ctx context.Context, requestID string, endpoint string) context.Context {
	return WithAttrs(ctx, RequestID(requestID), Endpoint(endpoint))
}
