package memory

import (
	"context"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/pkg/errs"
)

type bookingRepository struct {
	uow *UnitOfWork
}

// NextID issues "BKG<n>" with n one above the last issued number. Rolling back returns the
// number to the pool.
func (r *bookingRepository) NextID(_ context.Context) (string, error) {
	if err := r.uow.ensureActive(); err != nil {
		return "", err
	}

	db := r.uow.db
	prev := db.seq
	db.seq++
	r.uow.journal(func() { db.seq = prev })

	return booking.FormatID(db.seq), nil
}

// Add stores a copy of a new booking.
func (r *bookingRepository) Add(_ context.Context, aggregate *booking.Booking) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.uow.db
	id := aggregate.ID()
	if _, ok := db.bookings[id]; ok {
		return errs.NewConflictError("booking " + id + " already exists")
	}

	db.bookings[id] = aggregate.Clone()
	db.bookingOrder = append(db.bookingOrder, id)
	r.uow.journal(func() {
		delete(db.bookings, id)
		db.bookingOrder = db.bookingOrder[:len(db.bookingOrder)-1]
	})

	return nil
}

// Update replaces the stored copy of an existing booking.
func (r *bookingRepository) Update(_ context.Context, aggregate *booking.Booking) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.uow.db
	id := aggregate.ID()
	prev, ok := db.bookings[id]
	if !ok {
		return errs.NewObjectNotFoundError("booking", id)
	}

	db.bookings[id] = aggregate.Clone()
	r.uow.journal(func() { db.bookings[id] = prev })

	return nil
}

// Get returns a copy of the booking.
func (r *bookingRepository) Get(_ context.Context, id string) (*booking.Booking, error) {
	if err := r.uow.ensureActive(); err != nil {
		return nil, err
	}

	b, ok := r.uow.db.bookings[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("booking", id)
	}
	return b.Clone(), nil
}

// ListPending returns copies of Pending bookings in issuance order.
func (r *bookingRepository) ListPending(_ context.Context) ([]*booking.Booking, error) {
	if err := r.uow.ensureActive(); err != nil {
		return nil, err
	}

	db := r.uow.db
	pending := make([]*booking.Booking, 0)
	for _, id := range db.bookingOrder {
		if b := db.bookings[id]; b.Status() == booking.Pending {
			pending = append(pending, b.Clone())
		}
	}
	return pending, nil
}
