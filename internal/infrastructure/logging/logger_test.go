package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	cblog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tuikit/internal/ports"
)

func jsonLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		payload := make(map[string]any)
		require.NoError(t, json.Unmarshal([]byte(line), &payload), line)
		lines = append(lines, payload)
	}
	return lines
}

func TestLoggerWritesFieldsAndCorrelationID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Level:     "debug",
		Formatter: cblog.JSONFormatter,
		Component: "gallery",
	})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "results loaded", "source", "fruit", "count", 15)

	lines := jsonLines(t, buf.String())
	require.Len(t, lines, 1)
	assert.Equal(t, "results loaded", lines[0]["msg"])
	assert.Equal(t, "gallery", lines[0]["component"])
	assert.Equal(t, "abc123", lines[0]["correlation_id"])
	assert.Equal(t, "fruit", lines[0]["source"])
	assert.EqualValues(t, 15, lines[0]["count"])
}

func TestLoggerWithOverridesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Formatter: cblog.JSONFormatter, Component: "gallery"})
	require.NoError(t, err)

	child := logger.With("component", "combobox", "widget", "fruit")
	child.Warn(context.Background(), "menu closed")

	lines := jsonLines(t, buf.String())
	require.Len(t, lines, 1)
	assert.Equal(t, "combobox", lines[0]["component"])
	assert.Equal(t, "fruit", lines[0]["widget"])
}

func TestLoggerLevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "warn", Formatter: cblog.JSONFormatter})
	require.NoError(t, err)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	logger.Error(context.Background(), "shown")

	lines := jsonLines(t, buf.String())
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["msg"])

	_, err = New(Options{Level: "loud"})
	require.ErrorContains(t, err, "parse log level")
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello")
	require.Same(t, noOp, noOp.With("key", "value"))

	var nilLogger *Logger
	require.NotNil(t, nilLogger.With("k", "v"))
}

func TestBufferFlushesInOrder(t *testing.T) {
	t.Parallel()

	buffer := NewBuffer(10)
	ctx := ports.WithCorrelationID(context.Background(), "boot")
	buffer.Info(ctx, "reading config", "path", "gallery.yaml")
	buffer.With("component", "config").Error(ctx, "invalid", "field", "theme")
	require.Equal(t, 2, buffer.Len())

	var out bytes.Buffer
	delegate, err := New(Options{Writer: &out, Formatter: cblog.JSONFormatter})
	require.NoError(t, err)
	buffer.Flush(delegate)
	require.Zero(t, buffer.Len())

	lines := jsonLines(t, out.String())
	require.Len(t, lines, 2)
	assert.Equal(t, "reading config", lines[0]["msg"])
	assert.Equal(t, "gallery.yaml", lines[0]["path"])
	assert.Equal(t, "invalid", lines[1]["msg"])
	assert.Equal(t, "config", lines[1]["component"])
	assert.Equal(t, "boot", lines[1]["correlation_id"])
}

func TestBufferDropsOldest(t *testing.T) {
	t.Parallel()

	buffer := NewBuffer(2)
	for _, msg := range []string{"one", "two", "three"} {
		buffer.Info(context.Background(), msg)
	}

	var out bytes.Buffer
	delegate, err := New(Options{Writer: &out, Formatter: cblog.JSONFormatter})
	require.NoError(t, err)
	buffer.Flush(delegate)

	lines := jsonLines(t, out.String())
	require.Len(t, lines, 2)
	assert.Equal(t, "two", lines[0]["msg"])
	assert.Equal(t, "three", lines[1]["msg"])
}

func TestMergeFields(t *testing.T) {
	t.Parallel()

	got := MergeFields([]any{"a", 1, "b", 2}, []any{"a", 3, 42, "x", "", 5, "c"}, []any{"d", 4})
	assert.Equal(t, []any{"a", 3, "b", 2, "d", 4}, got)
}
