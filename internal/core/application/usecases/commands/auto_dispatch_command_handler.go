package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/services"
)

// AutoDispatchCommandHandler dispatches pending bookings in creation order until either
// every one is assigned or no driver is online.
//
// Each booking goes through DispatchBookingCommandHandler in its own unit of work, so a
// manual dispatch racing with the job is resolved by the usual idempotence rule and the
// store is never locked for the whole batch.
type AutoDispatchCommandHandler struct {
	uowFactory UoWFactory
	dispatch   DispatchBookingCommandHandler
}

// NewAutoDispatchCommandHandler creates the handler on top of the dispatch engine.
func NewAutoDispatchCommandHandler(
	uowFactory UoWFactory,
	dispatch DispatchBookingCommandHandler,
) AutoDispatchCommandHandler {
	return AutoDispatchCommandHandler{
		uowFactory: uowFactory,
		dispatch:   dispatch,
	}
}

// Handle returns how many bookings this run assigned. Running out of drivers is an expected
// outcome and ends the run without an error.
func (h AutoDispatchCommandHandler) Handle(ctx context.Context, cmd AutoDispatchCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	pendingIDs, err := h.pendingBookingIDs(ctx)
	if err != nil {
		return 0, err
	}

	assigned := 0
	for _, id := range pendingIDs {
		if err = ctx.Err(); err != nil {
			return assigned, err
		}

		dispatchCmd, cmdErr := NewDispatchBookingCommand(id)
		if cmdErr != nil {
			return assigned, cmdErr
		}

		result, dispatchErr := h.dispatch.Handle(ctx, dispatchCmd)
		if errors.Is(dispatchErr, services.ErrNoDriverAvailable) {
			return assigned, nil
		}
		if dispatchErr != nil {
			return assigned, dispatchErr
		}

		if !result.AlreadyAssigned {
			assigned++
		}
	}

	return assigned, nil
}

func (h AutoDispatchCommandHandler) pendingBookingIDs(ctx context.Context) ([]string, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.BookingRepository().ListPending(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(pending))
	for _, b := range pending {
		ids = append(ids, b.ID())
	}
	return ids, nil
}
