package memory

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/errs"
)

type driverRepository struct {
	uow *UnitOfWork
}

// Save inserts or replaces a copy of d. A replaced driver keeps its registry position.
func (r *driverRepository) Save(_ context.Context, d *driver.Driver) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	db := r.uow.db
	id := d.ID()
	prev, known := db.drivers[id]

	db.drivers[id] = d.Clone()
	if known {
		r.uow.journal(func() { db.drivers[id] = prev })
		return nil
	}

	db.driverOrder = append(db.driverOrder, id)
	r.uow.journal(func() {
		delete(db.drivers, id)
		db.driverOrder = db.driverOrder[:len(db.driverOrder)-1]
	})
	return nil
}

// Get returns a copy of the driver.
func (r *driverRepository) Get(_ context.Context, id string) (*driver.Driver, error) {
	if err := r.uow.ensureActive(); err != nil {
		return nil, err
	}

	d, ok := r.uow.db.drivers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("driver", id)
	}
	return d.Clone(), nil
}

// ListOnline returns copies of online drivers in registration order.
func (r *driverRepository) ListOnline(_ context.Context) ([]*driver.Driver, error) {
	if err := r.uow.ensureActive(); err != nil {
		return nil, err
	}

	db := r.uow.db
	online := make([]*driver.Driver, 0)
	for _, id := range db.driverOrder {
		if d := db.drivers[id]; d.IsOnline() {
			online = append(online, d.Clone())
		}
	}
	return online, nil
}
