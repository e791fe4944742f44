package ports

import (
	"context"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/driver"
)

// BookingView is a booking together with the driver it is assigned to, if any.
type BookingView struct {
	Booking    booking.Snapshot
	AssignedTo string
}

// BookingReader serves read models without taking part in a unit of work. Each call
// observes one consistent state of the store.
type BookingReader interface {
	// ListBookings returns every booking ascending by creation time, ties in issuance order.
	ListBookings(ctx context.Context) ([]BookingView, error)

	// GetBooking returns one booking or an ObjectNotFoundError.
	GetBooking(ctx context.Context, id string) (BookingView, error)

	// ListDriverTasks returns bookings assigned to driverID that are not yet delivered, in
	// creation order. An unknown driver simply has no tasks.
	ListDriverTasks(ctx context.Context, driverID string) ([]BookingView, error)
}

// DriverReader lists the registry for read models.
type DriverReader interface {
	// ListDrivers returns every driver in registration order.
	ListDrivers(ctx context.Context) ([]*driver.Driver, error)
}
