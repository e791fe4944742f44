package queries

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetBookingEventsQueryIsNotConstructed = errors.New(
	"GetBookingEventsQuery must be created via NewGetBookingEventsQuery constructor",
)

// GetBookingEventsQuery retrieves the recorded lifecycle events of one booking.
type GetBookingEventsQuery struct {
	bookingID string

	guard guard.ConstructorGuard
}

func NewGetBookingEventsQuery(bookingID string) (GetBookingEventsQuery, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return GetBookingEventsQuery{}, errs.NewValueIsRequiredError("bookingId")
	}

	return GetBookingEventsQuery{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetBookingEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingEventsQueryIsNotConstructed)
}

func (q GetBookingEventsQuery) BookingID() string {
	return q.bookingID
}
