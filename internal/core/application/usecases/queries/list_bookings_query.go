// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries never open a unit of work; they go through the reader ports, which return
// consistent copies of the store.
package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrListBookingsQueryIsNotConstructed = errors.New(
		"ListBookingsQuery must be created via NewListBookingsQuery constructor",
	)
)

// ListBookingsQuery retrieves every booking, oldest first, with the driver each one is
// assigned to.
//
// Example:
//
//	query := NewListBookingsQuery()
//	handler := NewListBookingsQueryHandler(db)
//
//	bookings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list bookings: %w", err)
//	}
type ListBookingsQuery struct {
	guard guard.ConstructorGuard
}

// NewListBookingsQuery creates a parameterless query for the whole booking store.
func NewListBookingsQuery() ListBookingsQuery {
	return ListBookingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListBookingsQueryIsNotConstructed if validation fails.
func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}
