// Package kafka forwards booking lifecycle events to a Kafka topic so services outside this
// process can follow bookings. Messages are keyed by booking id, which keeps every event of
// one booking on one partition and therefore in order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

var _ ports.EventSink = (*Producer)(nil)

// messageWriter is the part of *kafkago.Writer the producer needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Producer publishes events as JSON envelopes.
type Producer struct {
	writer messageWriter
	topic  string
}

// NewProducer creates a producer writing to topic on the brokers at host.
//
// Example:
//
//	producer := kafka.NewProducer("localhost:9092", "booking.events")
//	hub.Attach(ctx, producer, 64)
func NewProducer(host string, topic string) *Producer {
	return NewProducerWithWriter(&kafkago.Writer{
		Addr:         kafkago.TCP(host),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}, topic)
}

// NewProducerWithWriter creates a producer over an existing writer.
func NewProducerWithWriter(writer messageWriter, topic string) *Producer {
	return &Producer{writer: writer, topic: topic}
}

// Name identifies the sink in logs.
func (p *Producer) Name() string {
	return "kafka:" + p.topic
}

// Deliver writes one message for ev.
func (p *Producer) Deliver(ctx context.Context, ev event.BookingEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", ev.ID.String(), err)
	}

	msg := kafkago.Message{
		Key:   []byte(ev.Booking.ID),
		Value: payload,
		Time:  ev.OccurredAt,
		Headers: []kafkago.Header{
			{Key: "type", Value: []byte(ev.Type)},
		},
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event %s to %s: %w", ev.ID.String(), p.topic, err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
