package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// DispatchBookingResult is the outcome of a dispatch.
type DispatchBookingResult struct {
	// AssignedTo is the driver bound to the booking.
	AssignedTo string
	// Booking is the booking after dispatch.
	Booking *booking.Booking
	// AlreadyAssigned is true when an earlier dispatch had bound the driver.
	AlreadyAssigned bool
}

// DispatchBookingCommandHandler is the dispatch engine: it binds exactly one online driver
// to a booking, atomically and idempotently.
//
// The whole sequence (look up the booking, check for an existing assignment, select a
// driver, write the assignment, mark the booking assigned) runs inside one unit of work, so
// concurrent dispatches of the same booking serialize: the first one assigns, every later
// one finds the assignment and returns it.
//
// Example:
//
//	handler := NewDispatchBookingCommandHandler(uowFactory, services.NewBookingDispatcher(nil))
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Unknown booking")
//	case errors.Is(err, services.ErrNoDriverAvailable):
//	    log.Println("Nobody online, try again later")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Printf("Booking assigned to %s", result.AssignedTo)
//	}
type DispatchBookingCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.BookingDispatcher
}

// NewDispatchBookingCommandHandler creates the dispatch handler.
// Requires a UoWFactory for coordinating bookings, drivers and assignments, and the
// dispatcher carrying the driver selection strategy.
func NewDispatchBookingCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.BookingDispatcher,
) DispatchBookingCommandHandler {
	return DispatchBookingCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle dispatches the booking.
// Returns ObjectNotFoundError for an unknown booking and services.ErrNoDriverAvailable when
// nobody is online; in both cases nothing changes and no event is emitted.
// On success a booking_updated event carrying the booking and the driver is raised.
func (h DispatchBookingCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchBookingCommand,
) (DispatchBookingResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchBookingResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DispatchBookingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	driverRepo := uow.DriverRepository()
	assignmentRepo := uow.AssignmentRepository()

	b, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return DispatchBookingResult{}, err
	}

	existing, err := assignmentRepo.Get(ctx, cmd.BookingID())
	if err == nil {
		return DispatchBookingResult{
			AssignedTo:      existing.DriverID(),
			Booking:         b,
			AlreadyAssigned: true,
		}, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return DispatchBookingResult{}, err
	}

	online, err := driverRepo.ListOnline(ctx)
	if err != nil {
		return DispatchBookingResult{}, err
	}

	now := time.Now().UTC()
	selected, a, err := h.dispatcher.Dispatch(b, online, now)
	if err != nil {
		return DispatchBookingResult{}, err
	}

	if err = assignmentRepo.Add(ctx, a); err != nil {
		return DispatchBookingResult{}, err
	}

	if err = bookingRepo.Update(ctx, b); err != nil {
		return DispatchBookingResult{}, err
	}

	uow.RaiseEvent(event.NewBookingUpdated(b.Snapshot(), selected.ID(), now))

	if err = uow.Commit(ctx); err != nil {
		return DispatchBookingResult{}, err
	}

	return DispatchBookingResult{
		AssignedTo: selected.ID(),
		Booking:    b,
	}, nil
}
