package diag

import (
	"context"
	"log/slog"
)

type contextAttrsKey struct{}

// ContextWithAttrs returns a context that carries given attributes.
// Records logged with this context by the root logger will include them.
func ContextWithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing := AttrsFromContext(ctx)
	combined := make([]slog.Attr, 0, len(existing)+len(attrs))
	combined = append(combined, existing...)
	combined = append(combined, attrs...)
	return context.WithValue(ctx, contextAttrsKey{}, combined)
}

func AttrsFromContext(ctx context.Context) []slog.Attr {
	attrs, _ := ctx.Value(contextAttrsKey{}).([]slog.Attr)
	return attrs
}

type contextAttrsHandler struct {
	next slog.Handler
}

func (h *contextAttrsHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextAttrsHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs := AttrsFromContext(ctx); len(attrs) > 0 {
		record = record.Clone()
		record.AddAttrs(attrs...)
	}
	return h.next.Handle(ctx, record)
}

func (h *contextAttrsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextAttrsHandler{next: h.next.WithAttrs(attrs)}
}

func (h *contextAttrsHandler) WithGroup(name string) slog.Handler {
	return &contextAttrsHandler{next: h.next.WithGroup(name)}
}
