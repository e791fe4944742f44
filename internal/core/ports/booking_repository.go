// Package ports defines the contracts between the dispatch core and its adapters:
// repositories, the unit of work, the event notifier, read models and the identity
// collaborator.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/booking"
)

// BookingRepository is the Booking Store as seen from inside a unit of work.
// Implementations hand out copies; a change is visible to others only after Update and
// Commit.
type BookingRepository interface {
	// NextID issues the next booking identifier. Identifiers are unique and monotonically
	// increasing; rolling back the unit of work releases the identifier again.
	NextID(ctx context.Context) (string, error)

	// Add stores a new booking. Adding an id that already exists is a conflict.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update replaces the stored state of an existing booking.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get returns the booking or an ObjectNotFoundError.
	Get(ctx context.Context, id string) (*booking.Booking, error)

	// ListPending returns every Pending booking in creation order.
	ListPending(ctx context.Context) ([]*booking.Booking, error)
}
