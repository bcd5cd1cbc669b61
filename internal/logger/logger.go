// Package logger adapts zerolog to ports.Logger. It writes JSON lines, or a
// console rendering when HumanReadable is set.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/tuikit/internal/ports"
)

// Options configures the logger.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// Logger implements ports.Logger on zerolog.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger. An empty level means info.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	output := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...any) {
	l.write(ctx, l.base.Debug(), msg, fields)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...any) {
	l.write(ctx, l.base.Info(), msg, fields)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...any) {
	l.write(ctx, l.base.Warn(), msg, fields)
}

// Error writes an error entry. An "error" field holding an error value is
// written with zerolog's error encoding.
func (l *Logger) Error(ctx context.Context, msg string, fields ...any) {
	l.write(ctx, l.base.Error(), msg, fields)
}

// With derives a logger that always writes fields.
func (l *Logger) With(fields ...any) ports.Logger {
	if l == nil {
		return &Logger{base: zerolog.Nop()}
	}
	return &Logger{base: l.base.With().Fields(pairs(fields)).Logger()}
}

func (l *Logger) write(ctx context.Context, event *zerolog.Event, msg string, fields []any) {
	if l == nil || event == nil {
		return
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || key == "" {
			continue
		}
		if err, isErr := fields[i+1].(error); isErr {
			event = event.AnErr(key, err)
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	event.Msg(msg)
}

// pairs drops keys that are not non-empty strings so zerolog never sees a
// malformed field list.
func pairs(fields []any) []any {
	out := make([]any, 0, len(fields))
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok && key != "" {
			out = append(out, key, fields[i+1])
		}
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
