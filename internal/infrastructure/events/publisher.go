// Package events delivers widget events to subscribers and records each one
// in the structured log.
package events

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/tuikit/internal/ports"
)

// Publisher logs every event at debug level, then hands it to the handlers
// subscribed to its type.
type Publisher struct {
	logger ports.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewPublisher creates a publisher that logs through logger, which may be
// nil.
func NewPublisher(logger ports.Logger) *Publisher {
	return &Publisher{
		logger: logger,
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish logs event and runs its handlers in subscription order.
func (p *Publisher) Publish(ctx context.Context, event ports.Event) error {
	if p == nil || event.Type == "" {
		return nil
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.Type]...)
	p.mu.RUnlock()

	if p.logger != nil {
		p.logger.Debug(ctx, "widget event", eventFields(event)...)
	}

	for _, entry := range handlers {
		if err := entry.handler(ctx, event); err != nil && p.logger != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.Type, "error", err)
		}
	}
	return nil
}

// Subscribe registers handler for eventType. A nil handler is ignored.
func (p *Publisher) Subscribe(eventType string, handler ports.EventHandler) ports.Subscription {
	if p == nil || handler == nil {
		return noopSubscription{}
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					p.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
					break
				}
			}
		},
	}
}

// eventFields flattens event into sorted log fields.
func eventFields(event ports.Event) []any {
	fields := []any{"event_type", event.Type}
	if event.Widget != "" {
		fields = append(fields, "widget", event.Widget)
	}
	keys := make([]string, 0, len(event.Fields))
	for key := range event.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fields = append(fields, key, event.Fields[key])
	}
	return fields
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler ports.EventHandler
}

var _ ports.EventPublisher = (*Publisher)(nil)
