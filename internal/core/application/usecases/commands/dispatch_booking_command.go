package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrDispatchBookingCommandIsNotConstructed = errors.New(
	"DispatchBookingCommand must be created via NewDispatchBookingCommand constructor",
)

// DispatchBookingCommand asks for a driver to be bound to one booking.
// Dispatching an already assigned booking is not an error: the existing assignment is
// returned unchanged.
//
// Example:
//
//	cmd, err := NewDispatchBookingCommand("BKG1")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type DispatchBookingCommand struct {
	bookingID string

	guard guard.ConstructorGuard
}

// NewDispatchBookingCommand creates the command for bookingID.
func NewDispatchBookingCommand(bookingID string) (DispatchBookingCommand, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return DispatchBookingCommand{}, errs.NewValueIsRequiredError("bookingId")
	}

	return DispatchBookingCommand{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchBookingCommand) Validate() error {
	return c.guard.Validate(ErrDispatchBookingCommandIsNotConstructed)
}

// BookingID returns the booking to dispatch.
func (c DispatchBookingCommand) BookingID() string {
	return c.bookingID
}
