// Package logging provides a slog handler that enriches records with
// attributes carried in the context, so request-scoped identifiers like the
// session id follow every log line without threading them through call
// signatures.
package logging

import (
	"context"
	"fmt"
	"log/slog"
)

type contextKey string

const attrsKey contextKey = "logAttrs"

// ContextHandler decorates an slog.Handler with context-carried attributes.
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler wraps h so that attributes stored with WithAttrs are
// appended to every record it handles.
func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{handler: h}
}

// Enabled delegates to the underlying handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle appends the context-carried attributes to the record before
// delegating.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(attrsKey).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	if err := h.handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("handle log record: %w", err)
	}
	return nil
}

// WithAttrs returns a ContextHandler wrapping the underlying handler's
// WithAttrs result.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a ContextHandler wrapping the underlying handler's
// WithGroup result.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// WithAttrs stores attributes in the context for ContextHandler to pick up.
// Existing attributes are kept.
func WithAttrs(ctx context.Context, attr ...slog.Attr) context.Context {
	if existing, ok := ctx.Value(attrsKey).([]slog.Attr); ok {
		attr = append(existing[:len(existing):len(existing)], attr...)
	}
	return context.WithValue(ctx, attrsKey, attr)
}

// WithSessionID tags the context so every subsequent log line carries the
// workout session id.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return WithAttrs(ctx, slog.String("session_id", sessionID))
}

// WithUserID tags the context so every subsequent log line carries the user
// id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return WithAttrs(ctx, slog.String("user_id", userID))
}
