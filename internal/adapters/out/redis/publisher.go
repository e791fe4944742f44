// Package redis republishes booking lifecycle events on a Redis pub/sub channel, letting other
// processes (for example additional web nodes) push them to their own observers.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

var _ ports.EventSink = (*Publisher)(nil)

// Config holds the connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// channelPublisher is the part of *goredis.Client the publisher needs.
type channelPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *goredis.IntCmd
	Close() error
}

// Publisher sends each event as a JSON envelope to one channel.
type Publisher struct {
	client  channelPublisher
	channel string
}

// NewPublisher connects to Redis lazily; the first Deliver opens the connection.
func NewPublisher(cfg Config) *Publisher {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewPublisherWithClient(client, cfg.Channel)
}

// NewPublisherWithClient creates a publisher over an existing client.
func NewPublisherWithClient(client channelPublisher, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

// Name identifies the sink in logs.
func (p *Publisher) Name() string {
	return "redis:" + p.channel
}

// Deliver publishes ev. Having no subscribers on the channel is not an error.
func (p *Publisher) Deliver(ctx context.Context, ev event.BookingEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", ev.ID.String(), err)
	}

	if err = p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event %s to %s: %w", ev.ID.String(), p.channel, err)
	}
	return nil
}

// Close releases the client.
func (p *Publisher) Close() error {
	return p.client.Close()
}
