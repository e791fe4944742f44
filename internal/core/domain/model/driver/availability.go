package driver

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Availability is the self-reported working state of a driver. Only Online drivers are
// candidates for dispatch.
type Availability int

const (
	// UnknownAvailability represents an uninitialized value.
	UnknownAvailability Availability = iota

	// Offline drivers are not working and never receive bookings.
	Offline

	// Online drivers are waiting for work.
	Online

	// Busy drivers are working but do not want new bookings. Dispatch never sets this state
	// on its own; drivers report it.
	Busy
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		UnknownAvailability: "unknown",
		Offline:             "offline",
		Online:              "online",
		Busy:                "busy",
	}
}

// ParseAvailability converts the wire form ("offline", "online", "busy").
func ParseAvailability(raw string) (Availability, error) {
	for availability, str := range getAvailabilityStrings() {
		if availability != UnknownAvailability && str == raw {
			return availability, nil
		}
	}
	return UnknownAvailability, errs.NewValueIsInvalidErrorWithCause(
		"availability", fmt.Errorf("%q is not one of offline, online, busy", raw))
}

// Validate rejects UnknownAvailability and out of range values.
func (a Availability) Validate() error {
	if a < Offline || a > Busy {
		return errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "unknown"
}
