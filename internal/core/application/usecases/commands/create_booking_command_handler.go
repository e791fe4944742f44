package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/event"
)

// CreateBookingCommandHandler stores a new Pending booking and announces it with a
// booking_created event.
//
// Example:
//
//	handler := NewCreateBookingCommandHandler(uowFactory)
//	b, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("booking creation failed: %w", err)
//	}
//	// b.ID() is "BKG<n>", b.Status() is booking.Pending
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewCreateBookingCommandHandler creates a handler for booking creation.
// Requires a BookingUoWFactory for transactional persistence.
func NewCreateBookingCommandHandler(uowFactory BookingUoWFactory) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle issues the booking id, stores the booking and raises booking_created. Nothing is
// stored and no event is emitted when any step fails.
func (h CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()

	id, err := bookingRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b, err := booking.NewBooking(
		id,
		cmd.CustomerID(),
		cmd.Pickup(),
		cmd.Drop(),
		cmd.Service(),
		cmd.COD(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = bookingRepo.Add(ctx, b); err != nil {
		return nil, err
	}

	uow.RaiseEvent(event.NewBookingCreated(b.Snapshot(), now))

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}
