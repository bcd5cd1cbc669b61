// Package logging adapts charmbracelet/log to ports.Logger. It is the
// human-readable backend; internal/logger provides the JSON one.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/tuikit/internal/ports"
)

// Options configures the adapter.
type Options struct {
	Writer       io.Writer
	Level        string
	TimeFormat   string
	ReportCaller bool
	Formatter    cblog.Formatter
	Component    string
	Fields       map[string]any
}

// Logger implements ports.Logger on charmbracelet/log.
type Logger struct {
	logger *cblog.Logger
	fields []any
}

// New creates a Logger. An empty level means info.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: opts.TimeFormat != "",
		ReportCaller:    opts.ReportCaller,
		Formatter:       opts.Formatter,
		Fields:          sortedFields(opts.Fields),
	})

	var fields []any
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}
	return &Logger{logger: base, fields: fields}, nil
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...any) {
	l.log(ctx, cblog.DebugLevel, msg, fields)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...any) {
	l.log(ctx, cblog.InfoLevel, msg, fields)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...any) {
	l.log(ctx, cblog.WarnLevel, msg, fields)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...any) {
	l.log(ctx, cblog.ErrorLevel, msg, fields)
}

// With derives a logger that always writes fields.
func (l *Logger) With(fields ...any) ports.Logger {
	if l == nil {
		return NewNoOpLogger()
	}
	return &Logger{logger: l.logger, fields: append(append([]any(nil), l.fields...), fields...)}
}

func (l *Logger) log(ctx context.Context, level cblog.Level, msg string, fields []any) {
	if l == nil || l.logger == nil {
		return
	}
	payload := MergeFields(l.fields, fields)
	if id := ports.GetCorrelationID(ctx); id != "" {
		payload = MergeFields(payload, []any{"correlation_id", id})
	}
	l.logger.Log(level, msg, payload...)
}

func sortedFields(input map[string]any) []any {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(input)*2)
	for _, k := range keys {
		out = append(out, k, input[k])
	}
	return out
}

// MergeFields joins key/value lists. A later value replaces an earlier one
// for the same key but keeps the key's first position. Pairs whose key is not
// a non-empty string are dropped.
func MergeFields(lists ...[]any) []any {
	store := make(map[string]any)
	var order []string
	for _, values := range lists {
		for i := 0; i+1 < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok || key == "" {
				continue
			}
			if _, seen := store[key]; !seen {
				order = append(order, key)
			}
			store[key] = values[i+1]
		}
	}

	out := make([]any, 0, len(order)*2)
	for _, key := range order {
		out = append(out, key, store[key])
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
