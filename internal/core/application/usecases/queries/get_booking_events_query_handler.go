package queries

import (
	"context"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"
)

// GetBookingEventsQueryHandler serves the event history of a booking from the journal.
type GetBookingEventsQueryHandler struct {
	reader  ports.BookingReader
	history ports.EventHistory
}

// NewGetBookingEventsQueryHandler creates the handler. A nil history means no journal is
// configured and every call fails with ports.ErrEventHistoryDisabled.
func NewGetBookingEventsQueryHandler(
	reader ports.BookingReader,
	history ports.EventHistory,
) GetBookingEventsQueryHandler {
	return GetBookingEventsQueryHandler{
		reader:  reader,
		history: history,
	}
}

// Handle returns ObjectNotFoundError for a booking this process does not know, even when the
// journal still holds events of it from an earlier run.
func (h GetBookingEventsQueryHandler) Handle(
	ctx context.Context,
	query GetBookingEventsQuery,
) ([]event.Envelope, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if h.history == nil {
		return nil, ports.ErrEventHistoryDisabled
	}

	if _, err := h.reader.GetBooking(ctx, query.BookingID()); err != nil {
		return nil, err
	}

	return h.history.ListByBooking(ctx, query.BookingID())
}
