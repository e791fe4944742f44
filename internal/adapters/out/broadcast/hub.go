// Package broadcast implements the event notifier: an in-process publish/subscribe hub that
// fans every booking event out to all currently connected observers.
//
// Delivery is best effort and at most once. Each observer gets a bounded buffer; when it is
// full the event is dropped for that observer only, so a slow or stuck observer never stalls
// the publisher. There is no replay: an observer sees only events published after it
// subscribed. Every observer receives every event; filtering is left to the observer.
//
// Sinks (Kafka, Redis, the event journal) are attached with Attach, which subscribes on
// their behalf and drains the subscription in a dedicated goroutine.
package broadcast

import (
	"context"
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"
)

// DefaultBuffer is the per observer buffer used when a non positive size is requested.
const DefaultBuffer = 64

var (
	_ ports.EventPublisher = (*Hub)(nil)
	_ ports.EventStream    = (*Hub)(nil)
)

type subscriber struct {
	ch   chan event.BookingEvent
	name string
}

// Hub is a non blocking fan-out of booking events.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint64]*subscriber
	nextID      uint64
	closed      bool

	sinks  sync.WaitGroup
	logger *slog.Logger
}

// NewHub creates a hub with no observers.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subscribers: make(map[uint64]*subscriber),
		logger:      logger.With("component", "EventHub"),
	}
}

// Publish hands ev to every observer without waiting. Observers with a full buffer miss it.
func (h *Hub) Publish(ev event.BookingEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.subscribers {
		select {
		case s.ch <- ev:
		default:
			h.logger.Warn("observer buffer full, event dropped",
				"observer", s.name,
				"eventType", string(ev.Type),
				"bookingId", ev.Booking.ID,
			)
		}
	}
}

// Subscribe connects a new observer. The returned cancel function disconnects it and closes
// the channel; calling it more than once is safe. Subscribing to a closed hub returns an
// already closed channel.
func (h *Hub) Subscribe(buffer int) (<-chan event.BookingEvent, func()) {
	return h.subscribe("stream", buffer)
}

// Attach subscribes sink and forwards every event to it until ctx is cancelled or the hub is
// closed. Delivery errors are logged; they never reach the publisher.
func (h *Hub) Attach(ctx context.Context, sink ports.EventSink, buffer int) {
	events, cancel := h.subscribe(sink.Name(), buffer)
	logger := h.logger.With("sink", sink.Name())

	h.sinks.Add(1)
	go func() {
		defer h.sinks.Done()
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if err := sink.Deliver(ctx, ev); err != nil {
					logger.ErrorContext(ctx, "failed to deliver event",
						"eventId", ev.ID.String(),
						"eventType", string(ev.Type),
						"bookingId", ev.Booking.ID,
						"error", err,
					)
				}
			}
		}
	}()
}

// Subscribers reports how many observers are connected.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Close disconnects every observer and waits for attached sinks to stop. Publishing after
// Close is a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	for id, s := range h.subscribers {
		close(s.ch)
		delete(h.subscribers, id)
	}
	h.mu.Unlock()

	h.sinks.Wait()
}

func (h *Hub) subscribe(name string, buffer int) (<-chan event.BookingEvent, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan event.BookingEvent, buffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subscribers[id] = &subscriber{ch: ch, name: name}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if s, ok := h.subscribers[id]; ok {
				close(s.ch)
				delete(h.subscribers, id)
			}
		})
	}
}
