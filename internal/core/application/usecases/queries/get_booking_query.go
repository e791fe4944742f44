package queries

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetBookingQueryIsNotConstructed = errors.New(
	"GetBookingQuery must be created via NewGetBookingQuery constructor",
)

// GetBookingQuery retrieves one booking by id.
type GetBookingQuery struct {
	bookingID string

	guard guard.ConstructorGuard
}

// NewGetBookingQuery requires a non-empty booking id.
func NewGetBookingQuery(bookingID string) (GetBookingQuery, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return GetBookingQuery{}, errs.NewValueIsRequiredError("bookingId")
	}

	return GetBookingQuery{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingQueryIsNotConstructed)
}

// BookingID returns the booking to look up.
func (q GetBookingQuery) BookingID() string {
	return q.bookingID
}
