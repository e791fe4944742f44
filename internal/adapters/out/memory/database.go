// Package memory provides the process scoped state of the dispatch core: the booking store,
// the driver registry and the assignment table, together with a Unit of Work over them.
//
// All state lives in one Database guarded by a single store wide read/write lock. A unit of
// work holds the write lock from Begin until Commit or Rollback, so every check-then-act
// sequence a command performs (for example "no assignment yet, pick a driver, write the
// assignment, mark the booking assigned") is atomic with respect to every other command.
// Plain reads take the read lock and return copies, so callers never see a half applied
// change and can never mutate stored state outside a unit of work.
//
// Usage Patterns:
//
//	db := memory.NewDatabase(hub)
//	factory := memory.NewUnitOfWorkFactory(db)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	b, err := uow.BookingRepository().Get(ctx, "BKG1")
//	// ... mutate and Update
//	uow.RaiseEvent(event.NewBookingUpdated(b.Snapshot(), "DRV1", time.Now()))
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance belongs to one goroutine
//   - Reads through Database must not be issued while the same goroutine holds a unit of work
//   - Events are handed to the publisher before the lock is released, so observers see
//     events for one booking in mutation order; the publisher never blocks
//
// Nothing is persisted: the state lives as long as the process.
package memory

import (
	"context"
	"slices"
	"sync"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	_ ports.BookingReader = (*Database)(nil)
	_ ports.DriverReader  = (*Database)(nil)
)

// Database is the shared state of the dispatch core. Create one per process with NewDatabase
// and share it between the unit of work factory and the query handlers.
type Database struct {
	mu sync.RWMutex

	bookings     map[string]*booking.Booking
	bookingOrder []string

	drivers     map[string]*driver.Driver
	driverOrder []string

	assignments map[string]assignment.Assignment

	seq uint64

	publisher ports.EventPublisher
}

// NewDatabase creates empty state. Events raised by committed units of work are handed to
// publisher; nil discards them.
func NewDatabase(publisher ports.EventPublisher) *Database {
	return &Database{
		bookings:    make(map[string]*booking.Booking),
		drivers:     make(map[string]*driver.Driver),
		assignments: make(map[string]assignment.Assignment),
		publisher:   publisher,
	}
}

// ListBookings returns every booking ascending by creation time. Bookings created at the same
// instant keep their issuance order.
func (db *Database) ListBookings(_ context.Context) ([]ports.BookingView, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	views := make([]ports.BookingView, 0, len(db.bookingOrder))
	for _, id := range db.bookingOrder {
		views = append(views, db.viewLocked(id))
	}

	sortByCreation(views)
	return views, nil
}

// GetBooking returns one booking and its driver, if assigned.
func (db *Database) GetBooking(_ context.Context, id string) (ports.BookingView, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if _, ok := db.bookings[id]; !ok {
		return ports.BookingView{}, errs.NewObjectNotFoundError("booking", id)
	}

	return db.viewLocked(id), nil
}

// ListDriverTasks returns the bookings assigned to driverID that are not delivered yet.
func (db *Database) ListDriverTasks(_ context.Context, driverID string) ([]ports.BookingView, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	views := make([]ports.BookingView, 0)
	for _, id := range db.bookingOrder {
		a, ok := db.assignments[id]
		if !ok || !a.IsOwnedBy(driverID) {
			continue
		}
		if db.bookings[id].Status() == booking.Delivered {
			continue
		}
		views = append(views, db.viewLocked(id))
	}

	sortByCreation(views)
	return views, nil
}

// ListDrivers returns copies of every registered driver in registration order.
func (db *Database) ListDrivers(_ context.Context) ([]*driver.Driver, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	drivers := make([]*driver.Driver, 0, len(db.driverOrder))
	for _, id := range db.driverOrder {
		drivers = append(drivers, db.drivers[id].Clone())
	}
	return drivers, nil
}

func (db *Database) viewLocked(id string) ports.BookingView {
	view := ports.BookingView{Booking: db.bookings[id].Snapshot()}
	if a, ok := db.assignments[id]; ok {
		view.AssignedTo = a.DriverID()
	}
	return view
}

func sortByCreation(views []ports.BookingView) {
	slices.SortStableFunc(views, func(a, b ports.BookingView) int {
		return a.Booking.CreatedAt.Compare(b.Booking.CreatedAt)
	})
}
