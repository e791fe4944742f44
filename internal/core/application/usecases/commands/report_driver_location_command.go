package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrReportDriverLocationCommandIsNotConstructed = errors.New(
	"ReportDriverLocationCommand must be created via NewReportDriverLocationCommand constructor",
)

// ReportDriverLocationCommand records where a driver currently is. The position is only used
// by proximity based dispatch.
type ReportDriverLocationCommand struct {
	driverID string
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewReportDriverLocationCommand validates the driver id and the location.
func NewReportDriverLocationCommand(driverID string, location kernel.Location) (ReportDriverLocationCommand, error) {
	driverID = strings.TrimSpace(driverID)

	var idErr, locationErr error
	if driverID == "" {
		idErr = driver.ErrIDIsRequired
	}
	if err := location.Validate(); err != nil {
		locationErr = errs.NewValueIsRequiredErrorWithCause("location", err)
	}
	if err := errors.Join(idErr, locationErr); err != nil {
		return ReportDriverLocationCommand{}, err
	}

	return ReportDriverLocationCommand{
		driverID: driverID,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportDriverLocationCommandIsNotConstructed)
}

// DriverID returns the driver.
func (c ReportDriverLocationCommand) DriverID() string {
	return c.driverID
}

// Location returns the reported position.
func (c ReportDriverLocationCommand) Location() kernel.Location {
	return c.location
}
