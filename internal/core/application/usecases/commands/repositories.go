// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
// Lifecycle events are raised inside the transaction and reach observers only after commit.
package commands

import (
	"context"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EventRaiser queues lifecycle events for publication on commit.
	EventRaiser interface {
		RaiseEvent(ev event.BookingEvent)
	}

	// BookingRepoFactory provides access to the booking store within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// DriverRepoFactory provides access to the driver registry within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// AssignmentRepoFactory provides access to the assignment table within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// BookingUoW manages transactions for booking-only operations.
	// Used when commands only create or modify bookings.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
		EventRaiser
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	// Driver changes raise no booking events.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// UoW manages transactions across bookings, drivers and assignments.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   bookingRepo := uow.BookingRepository()
	//   assignmentRepo := uow.AssignmentRepository()
	//   // ... perform operations
	//   uow.RaiseEvent(ev)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		BookingRepoFactory
		DriverRepoFactory
		AssignmentRepoFactory
		EventRaiser
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
