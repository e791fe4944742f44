package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingDispatcher_Dispatch(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("assigns first online driver", func(t *testing.T) {
		b := newPendingBooking(t, "11.55,104.91")
		drivers := []*driver.Driver{
			newDriver(t, "D0", driver.Offline),
			newDriver(t, "D1", driver.Online),
			newDriver(t, "D2", driver.Online),
		}

		selected, a, err := services.NewBookingDispatcher(nil).Dispatch(b, drivers, at)

		require.NoError(t, err)
		assert.Equal(t, "D1", selected.ID())
		assert.Equal(t, "D1", a.DriverID())
		assert.Equal(t, b.ID(), a.BookingID())
		assert.Equal(t, at, a.AssignedAt())
		assert.Equal(t, booking.Assigned, b.Status())
		assert.True(t, selected.IsOnline(), "dispatch does not mark drivers busy")
	})

	t.Run("no online driver leaves booking pending", func(t *testing.T) {
		b := newPendingBooking(t, "11.55,104.91")

		_, _, err := services.NewBookingDispatcher(services.FirstOnlineStrategy{}).
			Dispatch(b, []*driver.Driver{newDriver(t, "D0", driver.Busy)}, at)

		require.ErrorIs(t, err, services.ErrNoDriverAvailable)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, booking.Pending, b.Status())
	})

	t.Run("already assigned booking is rejected", func(t *testing.T) {
		b := newPendingBooking(t, "11.55,104.91")
		require.NoError(t, b.Assign())

		_, _, err := services.NewBookingDispatcher(nil).Dispatch(b, []*driver.Driver{newDriver(t, "D1", driver.Online)}, at)

		require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
	})

	t.Run("unconstructed booking is rejected", func(t *testing.T) {
		_, _, err := services.NewBookingDispatcher(nil).Dispatch(&booking.Booking{}, nil, at)

		require.ErrorIs(t, err, booking.ErrBookingIsNotConstructed)
	})
}

func TestNearestDriverStrategy_Select(t *testing.T) {
	b := newPendingBooking(t, "11.55,104.91")

	t.Run("picks the closest located driver", func(t *testing.T) {
		far := newDriverAt(t, "FAR", "11.70,105.10")
		near := newDriverAt(t, "NEAR", "11.551,104.911")
		unlocated := newDriver(t, "NOLOC", driver.Online)

		selected, err := services.NearestDriverStrategy{}.Select(b, []*driver.Driver{unlocated, far, near})

		require.NoError(t, err)
		assert.Equal(t, "NEAR", selected.ID())
	})

	t.Run("falls back to first unlocated driver", func(t *testing.T) {
		selected, err := services.NearestDriverStrategy{}.Select(b, []*driver.Driver{
			newDriver(t, "A", driver.Online),
			newDriver(t, "B", driver.Online),
		})

		require.NoError(t, err)
		assert.Equal(t, "A", selected.ID())
	})

	t.Run("ties keep registry order", func(t *testing.T) {
		selected, err := services.NearestDriverStrategy{}.Select(b, []*driver.Driver{
			newDriverAt(t, "FIRST", "11.56,104.91"),
			newDriverAt(t, "SECOND", "11.56,104.91"),
		})

		require.NoError(t, err)
		assert.Equal(t, "FIRST", selected.ID())
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := services.NearestDriverStrategy{}.Select(b, nil)
		require.ErrorIs(t, err, services.ErrNoDriverAvailable)
	})
}

func TestNewAssignmentStrategy(t *testing.T) {
	s, err := services.NewAssignmentStrategy("")
	require.NoError(t, err)
	assert.IsType(t, services.FirstOnlineStrategy{}, s)

	s, err = services.NewAssignmentStrategy(services.StrategyNearest)
	require.NoError(t, err)
	assert.IsType(t, services.NearestDriverStrategy{}, s)

	_, err = services.NewAssignmentStrategy("random")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestForwardOnlyPolicy_Allow(t *testing.T) {
	policy := services.ForwardOnlyPolicy{}

	tests := []struct {
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{booking.Assigned, booking.EnRoutePickup, true},
		{booking.Assigned, booking.PickedUp, true},
		{booking.PickedUp, booking.EnRouteDrop, true},
		{booking.EnRouteDrop, booking.Delivered, true},
		{booking.PickedUp, booking.PickedUp, false},
		{booking.Delivered, booking.EnRoutePickup, false},
		{booking.EnRouteDrop, booking.PickedUp, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			err := policy.Allow(tt.from, tt.to)
			if tt.allowed {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
		})
	}
}

func TestLenientPolicy_Allow(t *testing.T) {
	require.NoError(t, services.LenientPolicy{}.Allow(booking.Delivered, booking.EnRoutePickup))
	require.NoError(t, services.LenientPolicy{}.Allow(booking.PickedUp, booking.PickedUp))
}

func TestNewTransitionPolicy(t *testing.T) {
	p, err := services.NewTransitionPolicy("")
	require.NoError(t, err)
	assert.IsType(t, services.ForwardOnlyPolicy{}, p)

	p, err = services.NewTransitionPolicy(services.PolicyLenient)
	require.NoError(t, err)
	assert.IsType(t, services.LenientPolicy{}, p)

	_, err = services.NewTransitionPolicy("strict")
	require.Error(t, err)
}

func newPendingBooking(t *testing.T, pickup string) *booking.Booking {
	t.Helper()
	p, err := kernel.ParseLocation(pickup)
	require.NoError(t, err)
	drop, err := kernel.ParseLocation("11.57,104.93")
	require.NoError(t, err)
	b, err := booking.NewBooking("BKG1", "C1", p, drop, booking.Express, 0, "", time.Now())
	require.NoError(t, err)
	return b
}

func newDriver(t *testing.T, id string, availability driver.Availability) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, "Rider "+id, availability, 0)
	require.NoError(t, err)
	return d
}

func newDriverAt(t *testing.T, id string, location string) *driver.Driver {
	t.Helper()
	d := newDriver(t, id, driver.Online)
	loc, err := kernel.ParseLocation(location)
	require.NoError(t, err)
	require.NoError(t, d.ReportLocation(loc))
	return d
}
