package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/event"
)

// ErrEventHistoryDisabled is returned when no event journal is configured.
var ErrEventHistoryDisabled = errors.New("event history is not enabled")

// EventHistory reads back the recorded events of one booking, oldest first. It is filled by
// a sink, so it may trail the live state by the events still being delivered.
type EventHistory interface {
	ListByBooking(ctx context.Context, bookingID string) ([]event.Envelope, error)
}
