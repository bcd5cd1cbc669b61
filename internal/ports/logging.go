// Package ports holds the contracts shared between the widgets, the gallery
// and the infrastructure adapters.
package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger is the structured logging contract. Fields are alternating
// key/value pairs. Implementations must be safe for concurrent use and add
// the correlation id of ctx when one is present. Common keys:
//   - correlation_id, set once per CLI invocation
//   - component (gallery, combobox, source, history)
//   - widget, the id of the emitting widget
//   - source, duration_ms, count for result loads
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...any)
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, msg string, fields ...any)
	Error(ctx context.Context, msg string, fields ...any)
	With(fields ...any) Logger
}

type correlationIDKey struct{}

// WithCorrelationID attaches id to ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID returns the id attached to ctx, or "".
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID returns a new random UUID string.
func GenerateCorrelationID() string {
	return uuid.NewString()
}
