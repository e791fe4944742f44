package booking

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking.
//
// State transitions:
//
//	Pending ──> Assigned ──> EnRoutePickup ──> PickedUp ──> EnRouteDrop ──> Delivered
//	(dispatch)           └──────────── driver reported ──────────────┘
//
// Pending to Assigned happens only through dispatch. Every later status is reported by the
// assigned driver; which reports are accepted relative to the current status is decided by a
// transition policy in the services package. The numeric order of the constants is the
// lifecycle order, so policies can compare statuses directly.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. A pending booking never has an assignment.
	Pending

	// Assigned indicates a driver has been bound to the booking by dispatch.
	Assigned

	// EnRoutePickup indicates the driver is travelling to the pickup point.
	EnRoutePickup

	// PickedUp indicates the parcel is with the driver.
	PickedUp

	// EnRouteDrop indicates the driver is travelling to the drop point.
	EnRouteDrop

	// Delivered is the last lifecycle stage. Delivered bookings drop out of driver task lists.
	Delivered
)

// getStatusStrings returns the wire representation of every Status, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Pending:       "PENDING",
		Assigned:      "ASSIGNED",
		EnRoutePickup: "EN_ROUTE_PICKUP",
		PickedUp:      "PICKED_UP",
		EnRouteDrop:   "EN_ROUTE_DROP",
		Delivered:     "DELIVERED",
	}
}

// getValidStatusStrings returns only the statuses a booking can actually be in.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "PENDING",
		Assigned:      "ASSIGNED",
		EnRoutePickup: "EN_ROUTE_PICKUP",
		PickedUp:      "PICKED_UP",
		EnRouteDrop:   "EN_ROUTE_DROP",
		Delivered:     "DELIVERED",
	}
}

// getDriverSettableStatuses returns the statuses a driver may report for an assigned booking.
func getDriverSettableStatuses() map[Status]struct{} {
	//nolint:exhaustive // only the driver reported stages
	return map[Status]struct{}{
		EnRoutePickup: {},
		PickedUp:      {},
		EnRouteDrop:   {},
		Delivered:     {},
	}
}

// ParseStatus converts the wire representation (e.g. "PICKED_UP") into a Status.
// Matching is exact; "picked_up" is rejected.
//
// Returns:
//   - (Status, nil) for a known valid status
//   - (Unknown, StatusIsInvalidError) otherwise
func ParseStatus(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewStatusIsInvalidError(raw)
}

// ParseDriverStatus parses a status reported by a driver. Only EN_ROUTE_PICKUP, PICKED_UP,
// EN_ROUTE_DROP and DELIVERED are accepted; PENDING and ASSIGNED are reserved for the
// dispatch engine.
func ParseDriverStatus(raw string) (Status, error) {
	status, err := ParseStatus(raw)
	if err != nil {
		return Unknown, err
	}
	if !status.IsDriverSettable() {
		return Unknown, errs.NewStatusIsInvalidErrorWithCause(raw, fmt.Errorf(
			"drivers may only report %s", strings.Join(DriverSettableStatusStrings(), ", ")))
	}
	return status, nil
}

// DriverSettableStatusStrings lists the driver reportable statuses in lifecycle order.
func DriverSettableStatusStrings() []string {
	return []string{
		EnRoutePickup.String(),
		PickedUp.String(),
		EnRouteDrop.String(),
		Delivered.String(),
	}
}

// Validate checks that the Status is one a booking can be in.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
//
// Example:
//
//	fmt.Println(booking.PickedUp) // Output: "PICKED_UP"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsDriverSettable reports whether a driver may report this status.
func (s Status) IsDriverSettable() bool {
	_, ok := getDriverSettableStatuses()[s]
	return ok
}

// IsAfter reports whether s comes strictly later in the lifecycle than other.
func (s Status) IsAfter(other Status) bool {
	return s > other
}

// RequiresAssignment reports whether a booking in this status must have an assignment.
// Every status except Pending does.
func (s Status) RequiresAssignment() bool {
	return s != Pending && s != Unknown
}

// ValidateCanHaveAssignment enforces the cross-entity rule between a booking's status and
// the assignment table: pending bookings have no assignment and every later status has one.
//
// Parameters:
//   - assigned: whether an assignment exists for the booking
//
// Returns:
//   - error: validation error if status and assignment presence are inconsistent
func (s Status) ValidateCanHaveAssignment(assigned bool) error {
	if assigned && !s.RequiresAssignment() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !assigned && s.RequiresAssignment() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned. Only Pending bookings can be assigned;
// a booking is never reassigned.
//
// Returns:
//   - (Assigned, nil) on valid transition
//   - (Unknown, error) if the booking is not pending
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStatusIsInvalidErrorWithCause(
			s.String(),
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}

	return Assigned, nil
}
