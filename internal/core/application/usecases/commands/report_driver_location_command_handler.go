package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// ReportDriverLocationCommandHandler stores the last known position of a driver.
type ReportDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewReportDriverLocationCommandHandler creates the handler.
func NewReportDriverLocationCommandHandler(uowFactory DriverUoWFactory) ReportDriverLocationCommandHandler {
	return ReportDriverLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns ObjectNotFoundError for an unknown driver.
func (h ReportDriverLocationCommandHandler) Handle(
	ctx context.Context,
	cmd ReportDriverLocationCommand,
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

	if err = d.ReportLocation(cmd.Location()); err != nil {
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
