package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/guard"
)

var ErrSetDriverAvailabilityCommandIsNotConstructed = errors.New(
	"SetDriverAvailabilityCommand must be created via NewSetDriverAvailabilityCommand constructor",
)

// SetDriverAvailabilityCommand is a driver going online, offline or busy.
type SetDriverAvailabilityCommand struct {
	driverID     string
	availability driver.Availability

	guard guard.ConstructorGuard
}

// NewSetDriverAvailabilityCommand validates the driver id and the availability.
func NewSetDriverAvailabilityCommand(
	driverID string,
	availability driver.Availability,
) (SetDriverAvailabilityCommand, error) {
	driverID = strings.TrimSpace(driverID)

	var idErr error
	if driverID == "" {
		idErr = driver.ErrIDIsRequired
	}
	if err := errors.Join(idErr, availability.Validate()); err != nil {
		return SetDriverAvailabilityCommand{}, err
	}

	return SetDriverAvailabilityCommand{
		driverID:     driverID,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the driver.
func (c SetDriverAvailabilityCommand) DriverID() string {
	return c.driverID
}

// Availability returns the new working state.
func (c SetDriverAvailabilityCommand) Availability() driver.Availability {
	return c.availability
}
