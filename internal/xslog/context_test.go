package xslog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{name: "stored", ctx: WithLogger(context.Background(), logger), want: logger},
		{name: "missing", ctx: context.Background(), want: slog.Default()},
		{name: "nil ignored", ctx: WithLogger(context.Background(), nil), want: slog.Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FromContext(tt.ctx); got != tt.want {
				t.Errorf("FromContext() = %p, want %p", got, tt.want)
			}
		})
	}
}

func TestWithRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = WithRequest(ctx, "req-7", "/infra/status")

	FromContext(ctx).InfoContext(ctx, "api response", HTTPStatus(200))

	out := buf.String()
	for _, want := range []string{`"request_id":"req-7"`, `"endpoint":"/infra/status"`, `"status":200`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s:\n%s", want, out)
		}
	}
}

func TestWithAttrsNoAttrs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := WithAttrs(ctx); got != ctx {
		t.Error("WithAttrs() without attrs derived a new context")
	}
}
