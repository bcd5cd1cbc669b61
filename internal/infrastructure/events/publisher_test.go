package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	cblog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tuikit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tuikit/internal/ports"
)

func newJSONPublisher(t *testing.T) (*Publisher, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger, err := logging.New(logging.Options{
		Writer:    buf,
		Level:     "debug",
		Component: "publisher",
		Formatter: cblog.JSONFormatter,
	})
	require.NoError(t, err)
	return NewPublisher(logger), buf
}

func TestPublisherLogsEventWithCorrelationID(t *testing.T) {
	t.Parallel()

	publisher, buf := newJSONPublisher(t)
	ctx := ports.WithCorrelationID(context.Background(), "abc-123")
	require.NoError(t, publisher.Publish(ctx, ports.Event{
		Type:   ports.EventResultSelected,
		Widget: "branch",
		Fields: map[string]any{"value": "main"},
	}))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "widget event", entry["msg"])
	assert.Equal(t, ports.EventResultSelected, entry["event_type"])
	assert.Equal(t, "branch", entry["widget"])
	assert.Equal(t, "main", entry["value"])
	assert.Equal(t, "abc-123", entry["correlation_id"])
}

func TestPublisherDeliversToSubscribers(t *testing.T) {
	t.Parallel()

	publisher, _ := newJSONPublisher(t)

	var got []string
	sub := publisher.Subscribe(ports.EventMenuOpened, func(_ context.Context, event ports.Event) error {
		got = append(got, event.Widget)
		return nil
	})
	publisher.Subscribe(ports.EventMenuClosed, func(context.Context, ports.Event) error {
		t.Fatal("wrong event type delivered")
		return nil
	})

	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventMenuOpened, Widget: "a"}))
	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventMenuOpened, Widget: "b"}))

	assert.Equal(t, []string{"a"}, got)
}

func TestPublisherReportsHandlerErrors(t *testing.T) {
	t.Parallel()

	publisher, buf := newJSONPublisher(t)
	var second bool
	publisher.Subscribe(ports.EventBlur, func(context.Context, ports.Event) error {
		return errors.New("boom")
	})
	publisher.Subscribe(ports.EventBlur, func(context.Context, ports.Event) error {
		second = true
		return nil
	})

	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventBlur}))
	assert.True(t, second)
	assert.Contains(t, buf.String(), "event handler failed")
	assert.Equal(t, 2, strings.Count(strings.TrimSpace(buf.String()), "\n")+1)
}

func TestNilPublisherAndHandler(t *testing.T) {
	t.Parallel()

	var publisher *Publisher
	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventFocus}))
	publisher.Subscribe(ports.EventFocus, func(context.Context, ports.Event) error { return nil }).Unsubscribe()

	NewPublisher(nil).Subscribe(ports.EventFocus, nil).Unsubscribe()
	require.NoError(t, NewPublisher(nil).Publish(context.Background(), ports.Event{Type: ports.EventFocus}))
}
