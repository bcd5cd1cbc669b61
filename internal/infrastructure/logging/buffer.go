package logging

import (
	"context"
	"sync"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/tuikit/internal/ports"
)

const defaultBufferLimit = 256

type bufferedEntry struct {
	ctx    context.Context
	level  cblog.Level
	msg    string
	fields []any
}

// Buffer holds entries logged before the configured logger exists, such as
// while the config file that selects the logger is being read. When full,
// the oldest entry is dropped.
type Buffer struct {
	mu      sync.Mutex
	limit   int
	entries []bufferedEntry
	fields  []any
}

// NewBuffer creates a buffer; a limit below one uses the default.
func NewBuffer(limit int) *Buffer {
	if limit < 1 {
		limit = defaultBufferLimit
	}
	return &Buffer{limit: limit}
}

func (b *Buffer) Debug(ctx context.Context, msg string, fields ...any) {
	b.add(ctx, cblog.DebugLevel, msg, fields)
}

func (b *Buffer) Info(ctx context.Context, msg string, fields ...any) {
	b.add(ctx, cblog.InfoLevel, msg, fields)
}

func (b *Buffer) Warn(ctx context.Context, msg string, fields ...any) {
	b.add(ctx, cblog.WarnLevel, msg, fields)
}

func (b *Buffer) Error(ctx context.Context, msg string, fields ...any) {
	b.add(ctx, cblog.ErrorLevel, msg, fields)
}

// With returns a view of the same buffer with extra fields.
func (b *Buffer) With(fields ...any) ports.Logger {
	return &bufferView{buffer: b, fields: fields}
}

// Len returns the number of pending entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

func (b *Buffer) add(ctx context.Context, level cblog.Level, msg string, fields []any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry := bufferedEntry{ctx: ctx, level: level, msg: msg, fields: append([]any(nil), fields...)}
	if len(b.entries) == b.limit {
		copy(b.entries, b.entries[1:])
		b.entries[len(b.entries)-1] = entry
		return
	}
	b.entries = append(b.entries, entry)
}

// Flush replays the pending entries into delegate in order and empties the
// buffer.
func (b *Buffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	entries := b.entries
	b.entries = nil
	b.mu.Unlock()

	for _, e := range entries {
		switch e.level {
		case cblog.DebugLevel:
			delegate.Debug(e.ctx, e.msg, e.fields...)
		case cblog.WarnLevel:
			delegate.Warn(e.ctx, e.msg, e.fields...)
		case cblog.ErrorLevel:
			delegate.Error(e.ctx, e.msg, e.fields...)
		default:
			delegate.Info(e.ctx, e.msg, e.fields...)
		}
	}
}

type bufferView struct {
	buffer *Buffer
	fields []any
}

func (v *bufferView) Debug(ctx context.Context, msg string, fields ...any) {
	v.buffer.Debug(ctx, msg, MergeFields(v.fields, fields)...)
}

func (v *bufferView) Info(ctx context.Context, msg string, fields ...any) {
	v.buffer.Info(ctx, msg, MergeFields(v.fields, fields)...)
}

func (v *bufferView) Warn(ctx context.Context, msg string, fields ...any) {
	v.buffer.Warn(ctx, msg, MergeFields(v.fields, fields)...)
}

func (v *bufferView) Error(ctx context.Context, msg string, fields ...any) {
	v.buffer.Error(ctx, msg, MergeFields(v.fields, fields)...)
}

func (v *bufferView) With(fields ...any) ports.Logger {
	return &bufferView{buffer: v.buffer, fields: MergeFields(v.fields, fields)}
}

var (
	_ ports.Logger = (*Buffer)(nil)
	_ ports.Logger = (*bufferView)(nil)
)
