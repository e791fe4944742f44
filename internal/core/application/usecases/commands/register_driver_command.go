package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand adds a driver to the registry, or refreshes a known one.
//
// Example:
//
//	cmd, err := NewRegisterDriverCommand("DRV1", "Demo Rider", driver.Online, 10000)
//	if err != nil {
//	    return err
//	}
//	d, err := handler.Handle(ctx, cmd)
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID     string
	name         string
	availability driver.Availability
	cashCapacity int64

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand validates the registration. UnknownAvailability means the driver
// starts Offline.
func NewRegisterDriverCommand(
	driverID string,
	name string,
	availability driver.Availability,
	cashCapacity int64,
) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setAvailability(availability),
		cmd.setCashCapacity(cashCapacity),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the driver identifier.
func (c RegisterDriverCommand) DriverID() string {
	return c.driverID
}

// Name returns the display name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// Availability returns the requested working state.
func (c RegisterDriverCommand) Availability() driver.Availability {
	return c.availability
}

// CashCapacity returns the cash limit.
func (c RegisterDriverCommand) CashCapacity() int64 {
	return c.cashCapacity
}

func (c *RegisterDriverCommand) setDriverID(driverID string) error {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return driver.ErrIDIsRequired
	}

	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return driver.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setAvailability(availability driver.Availability) error {
	if availability == driver.UnknownAvailability {
		availability = driver.Offline
	}
	if err := availability.Validate(); err != nil {
		return err
	}

	c.availability = availability
	return nil
}

func (c *RegisterDriverCommand) setCashCapacity(cashCapacity int64) error {
	if cashCapacity < 0 {
		return errs.NewValueIsOutOfRangeError("cashCapacity", cashCapacity, 0, "unbounded")
	}

	c.cashCapacity = cashCapacity
	return nil
}
