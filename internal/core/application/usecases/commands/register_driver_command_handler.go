package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/errs"
)

// RegisterDriverCommandHandler inserts or refreshes a driver in the registry.
// Registering a known id replaces its name, capacity and availability and keeps its last
// known location and its position in the registry order.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the driver and returns the stored state.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (*driver.Driver, error) {
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
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		d, err = driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Availability(), cmd.CashCapacity())
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err = errors.Join(
			d.Rename(cmd.Name(), cmd.CashCapacity()),
			d.SetAvailability(cmd.Availability()),
		); err != nil {
			return nil, err
		}
	}

	if err = driverRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
