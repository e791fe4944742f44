package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a customer's request for a new delivery.
//
// Example:
//
//	pickup, _ := kernel.ParseLocation("11.55,104.91")
//	drop, _ := kernel.ParseLocation("11.57,104.93")
//	cmd, err := NewCreateBookingCommand("C1", pickup, drop, booking.Express, 0, "")
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewCreateBookingCommandHandler(uowFactory)
//	b, err := handler.Handle(ctx, cmd)
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	customerID string
	pickup     kernel.Location
	drop       kernel.Location
	service    booking.ServiceTier
	cod        int64
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand validates the booking input. Every invalid field is reported,
// joined into one error matching errs.ErrValidation.
func NewCreateBookingCommand(
	customerID string,
	pickup kernel.Location,
	drop kernel.Location,
	service booking.ServiceTier,
	cod int64,
	notes string,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPickup(pickup),
		cmd.setDrop(drop),
		cmd.setService(service),
		cmd.setCOD(cod),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateBookingCommandIsNotConstructed if validation fails.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// CustomerID returns who places the booking.
func (c CreateBookingCommand) CustomerID() string {
	return c.customerID
}

// Pickup returns the collection point.
func (c CreateBookingCommand) Pickup() kernel.Location {
	return c.pickup
}

// Drop returns the delivery point.
func (c CreateBookingCommand) Drop() kernel.Location {
	return c.drop
}

// Service returns the delivery tier.
func (c CreateBookingCommand) Service() booking.ServiceTier {
	return c.service
}

// COD returns the cash-on-delivery amount.
func (c CreateBookingCommand) COD() int64 {
	return c.cod
}

// Notes returns free text for the driver.
func (c CreateBookingCommand) Notes() string {
	return c.notes
}

func (c *CreateBookingCommand) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateBookingCommand) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}

	c.pickup = pickup
	return nil
}

func (c *CreateBookingCommand) setDrop(drop kernel.Location) error {
	if err := drop.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("drop", err)
	}

	c.drop = drop
	return nil
}

func (c *CreateBookingCommand) setService(service booking.ServiceTier) error {
	if service == "" {
		service = booking.DefaultServiceTier
	}
	if err := service.Validate(); err != nil {
		return err
	}

	c.service = service
	return nil
}

func (c *CreateBookingCommand) setCOD(cod int64) error {
	if cod < 0 {
		return errs.NewValueIsOutOfRangeError("cod", cod, 0, "unbounded")
	}

	c.cod = cod
	return nil
}
