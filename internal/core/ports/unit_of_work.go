package ports

import (
	"context"

	"dispatch/internal/core/domain/model/event"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the booking store, driver
// registry and assignment table. Between Begin and Commit or Rollback no other unit of work
// observes or changes the shared state, which makes check-then-act sequences atomic.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts the transaction. Calling Begin twice is a no-op.
	Begin(ctx context.Context) error

	// Commit makes all changes visible and hands raised events to the notifier, in the order
	// they were raised. Returns error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards all changes and raised events. Returns error if no transaction is
	// active, which makes a deferred Rollback after Commit harmless.
	Rollback(ctx context.Context) error

	// BookingRepository returns the booking store bound to the current transaction.
	BookingRepository() BookingRepository

	// DriverRepository returns the driver registry bound to the current transaction.
	DriverRepository() DriverRepository

	// AssignmentRepository returns the assignment table bound to the current transaction.
	AssignmentRepository() AssignmentRepository

	// RaiseEvent queues an event to be published on Commit.
	RaiseEvent(ev event.BookingEvent)
}
