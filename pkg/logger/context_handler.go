package logger

import (
	"context"
	"log/slog"
	"reflect"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler adds attributes pulled from the record's context before
// delegating. Attributes set explicitly on the record win over extracted ones
// with the same key.
type ContextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next. Nil extractors are skipped.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) *ContextHandler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &ContextHandler{next: next, extractors: clean}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.extractors) == 0 || ctx == nil {
		return h.next.Handle(ctx, rec)
	}

	var present map[string]struct{}
	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok {
			continue
		}
		if present == nil {
			present = make(map[string]struct{}, rec.NumAttrs())
			rec.Attrs(func(a slog.Attr) bool {
				present[a.Key] = struct{}{}
				return true
			})
		}
		if _, dup := present[attr.Key]; dup {
			continue
		}
		present[attr.Key] = struct{}{}
		rec.AddAttrs(attr)
	}
	return h.next.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}

// ValueExtractor logs ctx.Value(key) as name when present.
func ValueExtractor(name string, key any) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := ctx.Value(key); v != nil {
			return slog.Any(name, v), true
		}
		return slog.Attr{}, false
	}
}

type modelKey struct{}

// ContextWithModel records the model whose configuration is being derived,
// so that storage lookups made on its behalf can be attributed to it.
func ContextWithModel(ctx context.Context, t reflect.Type) context.Context {
	return context.WithValue(ctx, modelKey{}, t)
}

// ModelFromContext returns the model stored by ContextWithModel.
func ModelFromContext(ctx context.Context) (reflect.Type, bool) {
	t, ok := ctx.Value(modelKey{}).(reflect.Type)
	return t, ok && t != nil
}

// ModelExtractor adds the model attribute from ContextWithModel.
func ModelExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		t, ok := ModelFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return Model(t), true
	}
}
