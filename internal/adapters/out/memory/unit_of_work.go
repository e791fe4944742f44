package memory

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit, Rollback and repository calls made outside
// Begin and Commit/Rollback.
var ErrNoActiveTransaction = errors.New("no active unit of work")

// UnitOfWorkFactory creates UnitOfWork instances over one Database.
//
// Example:
//
//	factory := memory.NewUnitOfWorkFactory(db)
//	uow := factory.Create()
type UnitOfWorkFactory struct {
	db *Database
}

// NewUnitOfWorkFactory creates a factory for units of work over db.
func NewUnitOfWorkFactory(db *Database) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work. Each instance keeps its own undo journal and event
// queue.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{db: f.db}
}

// UnitOfWork is an exclusive transaction over the Database. Writes are applied immediately
// and journaled so Rollback can undo them; raised events are queued and only published on
// Commit.
type UnitOfWork struct {
	db     *Database
	active bool
	undo   []func()
	events []event.BookingEvent
}

// Begin takes the store wide write lock. Multiple calls to Begin on the same instance are
// safe and do not lock twice.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.db.mu.Lock()
	uow.active = true
	return nil
}

// Commit keeps all writes, hands queued events to the publisher in the order they were raised
// and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	if uow.db.publisher != nil {
		for _, ev := range uow.events {
			uow.db.publisher.Publish(ev)
		}
	}

	uow.finish()
	return nil
}

// Rollback undoes every journaled write in reverse order, drops queued events and releases
// the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	for i := len(uow.undo) - 1; i >= 0; i-- {
		uow.undo[i]()
	}

	uow.finish()
	return nil
}

// BookingRepository returns the booking store bound to this unit of work.
func (uow *UnitOfWork) BookingRepository() ports.BookingRepository {
	return &bookingRepository{uow: uow}
}

// DriverRepository returns the driver registry bound to this unit of work.
func (uow *UnitOfWork) DriverRepository() ports.DriverRepository {
	return &driverRepository{uow: uow}
}

// AssignmentRepository returns the assignment table bound to this unit of work.
func (uow *UnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return &assignmentRepository{uow: uow}
}

// RaiseEvent queues ev for publication on Commit.
func (uow *UnitOfWork) RaiseEvent(ev event.BookingEvent) {
	uow.events = append(uow.events, ev)
}

func (uow *UnitOfWork) journal(undo func()) {
	uow.undo = append(uow.undo, undo)
}

func (uow *UnitOfWork) ensureActive() error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	return nil
}

func (uow *UnitOfWork) finish() {
	uow.undo = nil
	uow.events = nil
	uow.active = false
	uow.db.mu.Unlock()
}
