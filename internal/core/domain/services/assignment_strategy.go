package services

import (
	"fmt"
	"math"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/errs"
)

// Strategy names accepted by NewAssignmentStrategy.
const (
	StrategyFirstOnline = "first_online"
	StrategyNearest     = "nearest"
)

// ErrNoDriverAvailable is returned when no online driver can take a booking. It is a
// conflict: the request was well formed but cannot succeed in the current registry state.
var ErrNoDriverAvailable = errs.NewConflictError("no drivers online")

// AssignmentStrategy picks exactly one driver for a booking out of the online drivers, or
// fails with ErrNoDriverAvailable. Candidates arrive in the registry's deterministic order,
// so a strategy that breaks ties by position is reproducible.
type AssignmentStrategy interface {
	Select(b *booking.Booking, online []*driver.Driver) (*driver.Driver, error)
}

// NewAssignmentStrategy resolves a strategy by its configuration name.
func NewAssignmentStrategy(name string) (AssignmentStrategy, error) {
	switch name {
	case "", StrategyFirstOnline:
		return FirstOnlineStrategy{}, nil
	case StrategyNearest:
		return NearestDriverStrategy{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("strategy",
			fmt.Errorf("%q is not one of %s, %s", name, StrategyFirstOnline, StrategyNearest))
	}
}

// FirstOnlineStrategy selects the first online driver in registry order.
type FirstOnlineStrategy struct{}

// Select returns the first candidate that is constructed and online.
func (FirstOnlineStrategy) Select(_ *booking.Booking, online []*driver.Driver) (*driver.Driver, error) {
	for _, d := range online {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if d.IsOnline() {
			return d, nil
		}
	}
	return nil, ErrNoDriverAvailable
}

// NearestDriverStrategy selects the online driver whose last reported location is closest
// to the pickup point by great-circle distance.
//
// Selection criteria:
//   - Drivers with a known location rank by distance, nearest first
//   - Drivers that never reported a location rank after every located driver
//   - Ties keep registry order
type NearestDriverStrategy struct{}

// Select returns the nearest online candidate.
func (NearestDriverStrategy) Select(b *booking.Booking, online []*driver.Driver) (*driver.Driver, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	var (
		best     *driver.Driver
		bestDist = math.Inf(1)
		fallback *driver.Driver
	)

	for _, d := range online {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if !d.IsOnline() {
			continue
		}

		loc, ok := d.Location()
		if !ok {
			if fallback == nil {
				fallback = d
			}
			continue
		}

		dist, err := loc.DistanceKm(b.Pickup())
		if err != nil {
			return nil, err
		}
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}

	if best != nil {
		return best, nil
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, ErrNoDriverAvailable
}
