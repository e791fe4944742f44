package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
)

// AssignmentRepository is the Assignment Table: at most one assignment per booking, never
// replaced.
type AssignmentRepository interface {
	// Add stores a new assignment. A second assignment for the same booking is rejected with
	// a ConflictError and leaves the first one in place.
	Add(ctx context.Context, a assignment.Assignment) error

	// Get returns the assignment for bookingID or an ObjectNotFoundError.
	Get(ctx context.Context, bookingID string) (assignment.Assignment, error)
}
