package broadcast_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/adapters/out/broadcast"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSink struct{ mock.Mock }

func (m *MockSink) Name() string {
	return "mock"
}

func (m *MockSink) Deliver(ctx context.Context, ev event.BookingEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockSink) Close() error {
	return nil
}

func TestHub_FansOutToEveryObserver(t *testing.T) {
	hub := broadcast.NewHub(discardLogger())
	defer hub.Close()

	first, cancelFirst := hub.Subscribe(4)
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe(4)
	defer cancelSecond()

	ev := newEvent(t, "BKG1")
	hub.Publish(ev)

	assert.Equal(t, ev.ID, receive(t, first).ID)
	assert.Equal(t, ev.ID, receive(t, second).ID)
}

func TestHub_NoReplayForLateObservers(t *testing.T) {
	hub := broadcast.NewHub(discardLogger())
	defer hub.Close()

	hub.Publish(newEvent(t, "BKG1"))

	late, cancel := hub.Subscribe(4)
	defer cancel()

	select {
	case ev := <-late:
		t.Fatalf("unexpected replayed event %s", ev.Booking.ID)
	default:
	}
}

func TestHub_FullBufferDropsWithoutBlocking(t *testing.T) {
	hub := broadcast.NewHub(discardLogger())
	defer hub.Close()

	slow, cancelSlow := hub.Subscribe(1)
	defer cancelSlow()
	fast, cancelFast := hub.Subscribe(8)
	defer cancelFast()

	events := []event.BookingEvent{newEvent(t, "BKG1"), newEvent(t, "BKG2"), newEvent(t, "BKG3")}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, ev := range events {
			hub.Publish(ev)
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow observer")
	}

	assert.Equal(t, "BKG1", receive(t, slow).Booking.ID)
	assert.Len(t, slow, 0, "later events were dropped for the slow observer")

	for _, id := range []string{"BKG1", "BKG2", "BKG3"} {
		assert.Equal(t, id, receive(t, fast).Booking.ID)
	}
}

func TestHub_CancelDisconnects(t *testing.T) {
	hub := broadcast.NewHub(discardLogger())
	defer hub.Close()

	events, cancel := hub.Subscribe(1)
	require.Equal(t, 1, hub.Subscribers())

	cancel()
	cancel()

	_, ok := <-events
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Subscribers())

	hub.Publish(newEvent(t, "BKG1"))
}

func TestHub_CloseEndsSubscriptions(t *testing.T) {
	hub := broadcast.NewHub(discardLogger())

	events, cancel := hub.Subscribe(1)
	hub.Close()
	cancel()

	_, ok := <-events
	assert.False(t, ok)

	late, _ := hub.Subscribe(1)
	_, ok = <-late
	assert.False(t, ok)
}

func TestHub_AttachForwardsToSink(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	hub := broadcast.NewHub(discardLogger())

	first := newEvent(t, "BKG1")
	second := newEvent(t, "BKG2")
	delivered := make(chan string, 2)

	sink := new(MockSink)
	sink.On("Deliver", mock.Anything, first).
		Return(errors.New("broker down")).
		Run(func(mock.Arguments) { delivered <- "BKG1" }).
		Once()
	sink.On("Deliver", mock.Anything, second).
		Return(nil).
		Run(func(mock.Arguments) { delivered <- "BKG2" }).
		Once()

	hub.Attach(ctx, sink, 4)
	hub.Publish(first)
	hub.Publish(second)

	for _, want := range []string{"BKG1", "BKG2"} {
		select {
		case got := <-delivered:
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatalf("sink did not receive %s", want)
		}
	}

	hub.Close()
	sink.AssertExpectations(t)
}

func receive(t *testing.T, events <-chan event.BookingEvent) event.BookingEvent {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return event.BookingEvent{}
	}
}

func newEvent(t *testing.T, id string) event.BookingEvent {
	t.Helper()
	pickup, err := kernel.NewLocation(11.55, 104.91)
	require.NoError(t, err)
	drop, err := kernel.NewLocation(11.57, 104.93)
	require.NoError(t, err)

	b, err := booking.NewBooking(id, "C1", pickup, drop, booking.Express, 0, "", time.Now())
	require.NoError(t, err)
	return event.NewBookingCreated(b.Snapshot(), time.Now())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
