// Package assignment provides the Assignment value: the binding of one booking to the one
// driver that carries it.
package assignment

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when a zero value Assignment is used.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment relates a booking to a driver. It is immutable: the assignment table stores at
// most one per booking and never replaces it.
type Assignment struct {
	bookingID  string
	driverID   string
	assignedAt time.Time
	guard      guard.ConstructorGuard
}

// NewAssignment binds bookingID to driverID at the given time.
func NewAssignment(bookingID string, driverID string, assignedAt time.Time) (Assignment, error) {
	var errList []error
	if strings.TrimSpace(bookingID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("bookingId"))
	}
	if strings.TrimSpace(driverID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("driverId"))
	}
	if assignedAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("assignedAt"))
	}
	if err := errors.Join(errList...); err != nil {
		return Assignment{}, err
	}

	return Assignment{
		bookingID:  bookingID,
		driverID:   driverID,
		assignedAt: assignedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Assignment was created by NewAssignment.
func (a Assignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// BookingID returns the assigned booking.
func (a Assignment) BookingID() string {
	return a.bookingID
}

// DriverID returns the driver carrying the booking.
func (a Assignment) DriverID() string {
	return a.driverID
}

// AssignedAt returns when dispatch created the assignment.
func (a Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// IsOwnedBy reports whether driverID is the assigned driver.
func (a Assignment) IsOwnedBy(driverID string) bool {
	return a.driverID == driverID
}
