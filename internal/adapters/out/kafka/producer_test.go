package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct{ mock.Mock }

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestProducer_Deliver(t *testing.T) {
	ctx := t.Context()
	ev := newUpdatedEvent(t)

	writer := new(MockWriter)
	var written []kafkago.Message
	writer.On("WriteMessages", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			written = args.Get(1).([]kafkago.Message)
		}).
		Return(nil).
		Once()

	producer := kafka.NewProducerWithWriter(writer, "booking.events")
	require.NoError(t, producer.Deliver(ctx, ev))

	require.Len(t, written, 1)
	assert.Equal(t, []byte("BKG1"), written[0].Key)
	assert.Equal(t, ev.OccurredAt, written[0].Time)
	assert.Equal(t, "booking_updated", string(written[0].Headers[0].Value))

	var envelope event.Envelope
	require.NoError(t, json.Unmarshal(written[0].Value, &envelope))
	assert.Equal(t, event.BookingUpdated, envelope.Type)
	assert.Equal(t, "DRV1", envelope.Booking.AssignedTo)
	assert.Equal(t, "ASSIGNED", envelope.Booking.Status)
	writer.AssertExpectations(t)
}

func TestProducer_DeliverWrapsWriterError(t *testing.T) {
	ctx := t.Context()
	writer := new(MockWriter)
	writer.On("WriteMessages", ctx, mock.Anything).Return(errors.New("leader not available")).Once()

	producer := kafka.NewProducerWithWriter(writer, "booking.events")
	err := producer.Deliver(ctx, newUpdatedEvent(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "leader not available")
	assert.Equal(t, "kafka:booking.events", producer.Name())
}

func TestProducer_Close(t *testing.T) {
	writer := new(MockWriter)
	writer.On("Close").Return(nil).Once()

	require.NoError(t, kafka.NewProducerWithWriter(writer, "t").Close())
	writer.AssertExpectations(t)
}

func newUpdatedEvent(t *testing.T) event.BookingEvent {
	t.Helper()
	pickup, err := kernel.NewLocation(11.55, 104.91)
	require.NoError(t, err)
	drop, err := kernel.NewLocation(11.57, 104.93)
	require.NoError(t, err)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	b, err := booking.NewBooking("BKG1", "C1", pickup, drop, booking.Express, 0, "", at)
	require.NoError(t, err)
	require.NoError(t, b.Assign())

	return event.NewBookingUpdated(b.Snapshot(), "DRV1", at)
}
