package logging

import (
	"context"

	"github.com/alexisbeaulieu97/tuikit/internal/ports"
)

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (*NoOpLogger) Debug(context.Context, string, ...any) {}
func (*NoOpLogger) Info(context.Context, string, ...any)  {}
func (*NoOpLogger) Warn(context.Context, string, ...any)  {}
func (*NoOpLogger) Error(context.Context, string, ...any) {}

func (n *NoOpLogger) With(...any) ports.Logger { return n }

// NewNoOpLogger returns a logger that discards everything.
func NewNoOpLogger() ports.Logger {
	return &NoOpLogger{}
}
