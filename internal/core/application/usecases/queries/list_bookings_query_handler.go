package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// ListBookingsQueryHandler serves the booking list from the store's read side.
//
// Example:
//
//	handler := NewListBookingsQueryHandler(db)
//	bookings, err := handler.Handle(ctx, NewListBookingsQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Found %d bookings\n", len(bookings))
type ListBookingsQueryHandler struct {
	reader ports.BookingReader
}

// NewListBookingsQueryHandler creates a handler on top of a booking reader.
func NewListBookingsQueryHandler(reader ports.BookingReader) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{reader: reader}
}

// Handle returns bookings ascending by creation time. Bookings created at the same instant
// keep the order their ids were issued in. An empty store yields an empty, non-nil slice.
func (h ListBookingsQueryHandler) Handle(ctx context.Context, query ListBookingsQuery) ([]ports.BookingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.reader.ListBookings(ctx)
}
