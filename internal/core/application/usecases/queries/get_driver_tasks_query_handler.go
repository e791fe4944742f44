package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetDriverTasksQueryHandler lists a driver's open bookings in creation order.
type GetDriverTasksQueryHandler struct {
	reader ports.BookingReader
}

// NewGetDriverTasksQueryHandler creates the handler.
func NewGetDriverTasksQueryHandler(reader ports.BookingReader) GetDriverTasksQueryHandler {
	return GetDriverTasksQueryHandler{reader: reader}
}

// Handle never fails for an unknown driver; it returns an empty list.
func (h GetDriverTasksQueryHandler) Handle(ctx context.Context, query GetDriverTasksQuery) ([]ports.BookingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.reader.ListDriverTasks(ctx, query.DriverID())
}
