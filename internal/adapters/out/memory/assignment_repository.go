package memory

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/pkg/errs"
)

type assignmentRepository struct {
	uow *UnitOfWork
}

// Add records a. An existing assignment for the same booking is never replaced.
func (r *assignmentRepository) Add(_ context.Context, a assignment.Assignment) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}

	db := r.uow.db
	bookingID := a.BookingID()
	if existing, ok := db.assignments[bookingID]; ok {
		return errs.NewConflictError("booking " + bookingID + " is already assigned to " + existing.DriverID())
	}

	db.assignments[bookingID] = a
	r.uow.journal(func() { delete(db.assignments, bookingID) })

	return nil
}

// Get returns the assignment of bookingID.
func (r *assignmentRepository) Get(_ context.Context, bookingID string) (assignment.Assignment, error) {
	if err := r.uow.ensureActive(); err != nil {
		return assignment.Assignment{}, err
	}

	a, ok := r.uow.db.assignments[bookingID]
	if !ok {
		return assignment.Assignment{}, errs.NewObjectNotFoundError("assignment", bookingID)
	}
	return a, nil
}
