package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is a driver reporting progress on one of their bookings.
//
// The status is kept as submitted and only parsed by the handler, after ownership has been
// checked, so a stranger learns nothing about which status values exist.
//
// Example:
//
//	cmd, err := NewUpdateDeliveryStatusCommand("BKG1", "DRV1", "PICKED_UP")
//	if err != nil {
//	    return err
//	}
//	b, err := handler.Handle(ctx, cmd)
type UpdateDeliveryStatusCommand struct {
	bookingID string
	driverID  string
	status    string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates the command. Booking and driver ids are required.
func NewUpdateDeliveryStatusCommand(bookingID, driverID, status string) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		status: strings.TrimSpace(status),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setDriverID(driverID),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// BookingID returns the booking being updated.
func (c UpdateDeliveryStatusCommand) BookingID() string {
	return c.bookingID
}

// DriverID returns the driver reporting the status.
func (c UpdateDeliveryStatusCommand) DriverID() string {
	return c.driverID
}

// Status returns the status as submitted.
func (c UpdateDeliveryStatusCommand) Status() string {
	return c.status
}

func (c *UpdateDeliveryStatusCommand) setBookingID(bookingID string) error {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return errs.NewValueIsRequiredError("bookingId")
	}

	c.bookingID = bookingID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setDriverID(driverID string) error {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverId")
	}

	c.driverID = driverID
	return nil
}
