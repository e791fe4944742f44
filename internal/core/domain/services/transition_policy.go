package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/pkg/errs"
)

// Policy names accepted by NewTransitionPolicy.
const (
	PolicyForward = "forward"
	PolicyLenient = "lenient"
)

// TransitionPolicy decides whether a driver reported status may replace the current one.
// The requested status has already been checked to be driver settable.
type TransitionPolicy interface {
	Allow(from booking.Status, to booking.Status) error
}

// NewTransitionPolicy resolves a policy by its configuration name. The empty name selects
// the forward-only policy.
func NewTransitionPolicy(name string) (TransitionPolicy, error) {
	switch name {
	case "", PolicyForward:
		return ForwardOnlyPolicy{}, nil
	case PolicyLenient:
		return LenientPolicy{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("policy",
			fmt.Errorf("%q is not one of %s, %s", name, PolicyForward, PolicyLenient))
	}
}

// ForwardOnlyPolicy accepts a status only if it is strictly later in the lifecycle than the
// current one. Skipping stages is allowed (ASSIGNED -> PICKED_UP); repeating or going back
// is not (DELIVERED -> EN_ROUTE_PICKUP).
type ForwardOnlyPolicy struct{}

// Allow returns StatusIsInvalidError unless to comes after from.
func (ForwardOnlyPolicy) Allow(from booking.Status, to booking.Status) error {
	if !to.IsAfter(from) {
		return errs.NewStatusIsInvalidErrorWithCause(to.String(),
			fmt.Errorf("booking is already %s", from.String()))
	}
	return nil
}

// LenientPolicy accepts any driver settable status regardless of the current one, including
// repeats and backwards moves.
type LenientPolicy struct{}

// Allow always succeeds.
func (LenientPolicy) Allow(booking.Status, booking.Status) error {
	return nil
}
