package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// DriverRepository is the Driver Registry as seen from inside a unit of work.
type DriverRepository interface {
	// Save inserts a new driver or replaces a known one. New drivers are appended to the
	// registry order; replaced drivers keep their position.
	Save(ctx context.Context, d *driver.Driver) error

	// Get returns the driver or an ObjectNotFoundError.
	Get(ctx context.Context, id string) (*driver.Driver, error)

	// ListOnline returns online drivers in registration order. The order is deterministic
	// for a given registry state so assignment strategies are reproducible.
	ListOnline(ctx context.Context) ([]*driver.Driver, error)
}
