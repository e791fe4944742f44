package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetBookingQueryHandler looks up a single booking.
type GetBookingQueryHandler struct {
	reader ports.BookingReader
}

// NewGetBookingQueryHandler creates the handler.
func NewGetBookingQueryHandler(reader ports.BookingReader) GetBookingQueryHandler {
	return GetBookingQueryHandler{reader: reader}
}

// Handle returns ObjectNotFoundError for an unknown id.
func (h GetBookingQueryHandler) Handle(ctx context.Context, query GetBookingQuery) (ports.BookingView, error) {
	if err := query.Validate(); err != nil {
		return ports.BookingView{}, err
	}
	if err := ctx.Err(); err != nil {
		return ports.BookingView{}, err
	}

	return h.reader.GetBooking(ctx, query.BookingID())
}
