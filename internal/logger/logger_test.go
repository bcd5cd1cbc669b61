package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tuikit/internal/ports"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()
	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "gallery"})
	require.NoError(t, err)

	child := log.With("widget", "fruit", 7, "dropped")
	ctx := ports.WithCorrelationID(context.Background(), "corr-1")
	child.Info(ctx, "result selected", "value", "Apple")

	entry := decode(t, buf)
	assert.Equal(t, "result selected", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "gallery", entry["component"])
	assert.Equal(t, "fruit", entry["widget"])
	assert.Equal(t, "Apple", entry["value"])
	assert.Equal(t, "corr-1", entry["correlation_id"])
	assert.Contains(t, entry, "time")
}

func TestLoggerErrorField(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Error(context.Background(), "source failed", "error", errors.New("boom"))

	entry := decode(t, buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "WARN", Writer: buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "hidden")
	require.Zero(t, buf.Len())

	log.Warn(context.Background(), "shown")
	assert.Equal(t, "warn", decode(t, buf)["level"])

	_, err = New(Options{Level: "verbose"})
	require.Error(t, err)
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf, HumanReadable: true})
	require.NoError(t, err)

	log.Info(context.Background(), "menu opened", "widget", "fruit")
	out := buf.String()
	assert.True(t, strings.Contains(out, "menu opened"), out)
	assert.Contains(t, out, "widget=")
}

func TestNilLoggerWith(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.With("a", 1).Info(context.Background(), "ignored")
	})
}
