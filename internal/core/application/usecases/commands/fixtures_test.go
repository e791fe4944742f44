package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, raw string) kernel.Location {
	t.Helper()
	loc, err := kernel.ParseLocation(raw)
	require.NoError(t, err)
	return loc
}

func newPendingBooking(t *testing.T, id string) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(
		id,
		"C1",
		mustLocation(t, "11.55,104.91"),
		mustLocation(t, "11.57,104.93"),
		booking.Express,
		0,
		"",
		time.Now(),
	)
	require.NoError(t, err)
	return b
}

func newAssignedBooking(t *testing.T, id string) *booking.Booking {
	t.Helper()
	b := newPendingBooking(t, id)
	require.NoError(t, b.Assign())
	return b
}

func newTestDriver(t *testing.T, id string, availability driver.Availability) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, "Rider "+id, availability, 10000)
	require.NoError(t, err)
	return d
}

func newTestAssignment(t *testing.T, bookingID, driverID string) assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(bookingID, driverID, time.Now())
	require.NoError(t, err)
	return a
}
