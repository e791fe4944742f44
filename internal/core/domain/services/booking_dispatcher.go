package services

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/driver"
)

// BookingDispatcher is a domain service that binds a pending booking to one online driver.
//
// Key responsibilities:
//   - Validating the booking before dispatch
//   - Delegating driver choice to the configured AssignmentStrategy
//   - Moving the booking to Assigned and producing the matching Assignment
//
// Business rules:
//   - Only Pending bookings can be dispatched
//   - Exactly one driver is chosen, or ErrNoDriverAvailable is returned
//   - The chosen driver's availability is left untouched
//
// Example usage:
//
//	dispatcher := services.NewBookingDispatcher(services.FirstOnlineStrategy{})
//	d, a, err := dispatcher.Dispatch(b, onlineDrivers, time.Now())
//	if errors.Is(err, services.ErrNoDriverAvailable) {
//	    // Nobody online; booking stays pending
//	}
type BookingDispatcher struct {
	strategy AssignmentStrategy
}

// NewBookingDispatcher creates a dispatcher using the given selection strategy. A nil
// strategy falls back to FirstOnlineStrategy.
func NewBookingDispatcher(strategy AssignmentStrategy) BookingDispatcher {
	if strategy == nil {
		strategy = FirstOnlineStrategy{}
	}
	return BookingDispatcher{strategy: strategy}
}

// Dispatch selects a driver for b, marks b Assigned and returns the new Assignment.
// On any error b is left unchanged.
//
// Parameters:
//   - b: the booking to dispatch (must be Pending)
//   - online: candidate drivers in registry order
//   - at: assignment time
//
// Returns:
//   - *driver.Driver: the selected driver
//   - assignment.Assignment: the binding to store in the assignment table
//   - error: ErrNoDriverAvailable, a status error, or validation errors
func (d BookingDispatcher) Dispatch(
	b *booking.Booking,
	online []*driver.Driver,
	at time.Time,
) (*driver.Driver, assignment.Assignment, error) {
	if err := b.Validate(); err != nil {
		return nil, assignment.Assignment{}, err
	}

	if _, err := b.Status().Assign(); err != nil {
		return nil, assignment.Assignment{}, err
	}

	selected, err := d.strategy.Select(b, online)
	if err != nil {
		return nil, assignment.Assignment{}, err
	}

	a, err := assignment.NewAssignment(b.ID(), selected.ID(), at)
	if err != nil {
		return nil, assignment.Assignment{}, err
	}

	if err = b.Assign(); err != nil {
		return nil, assignment.Assignment{}, err
	}

	return selected, a, nil
}
