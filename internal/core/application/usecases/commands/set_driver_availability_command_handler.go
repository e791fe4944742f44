package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// SetDriverAvailabilityCommandHandler changes the availability of a registered driver.
// Going offline does not touch existing assignments; it only removes the driver from
// future dispatch candidates.
type SetDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSetDriverAvailabilityCommandHandler creates the handler.
func NewSetDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) SetDriverAvailabilityCommandHandler {
	return SetDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns ObjectNotFoundError for an unknown driver.
func (h SetDriverAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetDriverAvailabilityCommand,
) (*driver.Driver, error) {
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

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = d.SetAvailability(cmd.Availability()); err != nil {
		return nil, err
	}

	if err = driverRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
