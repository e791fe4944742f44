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

// ErrNotYourTask is returned when a driver reports status for a booking assigned to someone
// else, or not assigned at all.
var ErrNotYourTask = errs.NewForbiddenError("not your task")

// UpdateDeliveryStatusCommandHandler is the status state machine for driver reported
// progress.
//
// Checks run in a fixed order and stop at the first failure:
//  1. the booking exists (ObjectNotFoundError)
//  2. the reporting driver holds the assignment (ErrNotYourTask)
//  3. the status is one a driver may set (StatusIsInvalidError)
//  4. the transition policy accepts current -> requested (StatusIsInvalidError)
//
// A rejected update changes nothing and emits nothing.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewUpdateDeliveryStatusCommandHandler creates the handler. A nil policy means
// services.ForwardOnlyPolicy.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory UoWFactory,
	policy services.TransitionPolicy,
) UpdateDeliveryStatusCommandHandler {
	if policy == nil {
		policy = services.ForwardOnlyPolicy{}
	}
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle applies the status and raises booking_updated.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) (*booking.Booking, error) {
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
	assignmentRepo := uow.AssignmentRepository()

	b, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return nil, err
	}

	a, err := assignmentRepo.Get(ctx, cmd.BookingID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNotYourTask
	}
	if err != nil {
		return nil, err
	}
	if !a.IsOwnedBy(cmd.DriverID()) {
		return nil, ErrNotYourTask
	}

	requested, err := booking.ParseDriverStatus(cmd.Status())
	if err != nil {
		return nil, err
	}

	if err = h.policy.Allow(b.Status(), requested); err != nil {
		return nil, err
	}

	if err = b.Advance(requested); err != nil {
		return nil, err
	}

	if err = bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	uow.RaiseEvent(event.NewBookingUpdated(b.Snapshot(), a.DriverID(), time.Now().UTC()))

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}
