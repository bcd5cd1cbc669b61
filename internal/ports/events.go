package ports

import "context"

// Widget event types.
const (
	EventMenuOpened     = "combobox.menu_opened"
	EventMenuClosed     = "combobox.menu_closed"
	EventResultSelected = "combobox.result_selected"
	EventFocus          = "combobox.focus"
	EventBlur           = "combobox.blur"
	EventResultsLoaded  = "results.loaded"
	EventResultsFailed  = "results.failed"
)

// Event is a notification raised by a widget owner. Fields carry the
// event's details, such as the value of a selected result.
type Event struct {
	Type   string
	Widget string
	Fields map[string]any
}

// EventPublisher distributes events to subscribers. Publish runs the
// handlers synchronously. Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType string, handler EventHandler) Subscription
}

// EventHandler processes one event. A returned error is reported by the
// publisher and does not stop delivery to other handlers.
type EventHandler func(context.Context, Event) error

// Subscription stops delivery when cancelled.
type Subscription interface {
	Unsubscribe()
}
