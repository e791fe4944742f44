package ports

import (
	"context"

	"dispatch/internal/core/domain/model/event"
)

// EventPublisher broadcasts an event to every connected observer. Publish must never block:
// an observer that cannot keep up loses the event.
type EventPublisher interface {
	Publish(ev event.BookingEvent)
}

// EventStream lets observers connect to the broadcast. Subscribe returns a channel receiving
// every event published after the call, and a cancel function that disconnects the
// observer and closes the channel. There is no replay of earlier events.
type EventStream interface {
	Subscribe(buffer int) (<-chan event.BookingEvent, func())
}

// EventSink forwards events to an external system (Kafka, Redis, the event journal).
// A sink failure is the sink's problem: it is logged and never reaches the core.
type EventSink interface {
	Name() string
	Deliver(ctx context.Context, ev event.BookingEvent) error
	Close() error
}
