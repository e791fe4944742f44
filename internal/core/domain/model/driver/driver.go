package driver

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrIDIsRequired is returned when a driver is registered without an id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("driverId")
	// ErrNameIsRequired is returned when a driver is registered without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is a person who carries bookings. The registry owns drivers; dispatch only reads
// them.
//
// Business rules:
//   - Id and display name are required
//   - Cash capacity is non-negative; it is recorded but does not gate assignment
//   - The last known location is optional and only used by proximity based selection
//
// Example usage:
//
//	d, err := driver.NewDriver("DRV1", "Demo Rider", driver.Online, 10000)
//	if err != nil {
//	    // Handle construction error
//	}
type Driver struct {
	// id is chosen by whoever registers the driver
	id string
	// name is shown to customers and dispatchers
	name string
	// availability is the self-reported working state
	availability Availability
	// cashCapacity is how much cash the driver can carry, in minor units
	cashCapacity int64
	// location is the last reported position, nil until the driver reports one
	location *kernel.Location
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a Driver after validating every field.
//
// Parameters:
//   - id: unique non-empty identifier
//   - name: non-empty display name
//   - availability: initial working state
//   - cashCapacity: non-negative cash limit in minor units
func NewDriver(id string, name string, availability Availability, cashCapacity int64) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.SetAvailability(availability),
		d.setCashCapacity(cashCapacity),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks if the Driver was created by NewDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver identifier.
func (d *Driver) ID() string {
	return d.id
}

// Name returns the display name.
func (d *Driver) Name() string {
	return d.name
}

// Availability returns the working state.
func (d *Driver) Availability() Availability {
	return d.availability
}

// IsOnline reports whether the driver can receive new bookings.
func (d *Driver) IsOnline() bool {
	return d.availability == Online
}

// CashCapacity returns the cash limit in minor units.
func (d *Driver) CashCapacity() int64 {
	return d.cashCapacity
}

// Location returns the last reported position and whether one was ever reported.
func (d *Driver) Location() (kernel.Location, bool) {
	if d.location == nil {
		return kernel.Location{}, false
	}
	return *d.location, true
}

// SetAvailability changes the working state.
func (d *Driver) SetAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	d.availability = availability
	return nil
}

// ReportLocation records the driver's current position.
func (d *Driver) ReportLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = &location
	return nil
}

// Rename replaces the display name and cash capacity when a known driver registers again.
func (d *Driver) Rename(name string, cashCapacity int64) error {
	return errors.Join(d.setName(name), d.setCashCapacity(cashCapacity))
}

// Clone returns an independent copy.
func (d *Driver) Clone() *Driver {
	if d == nil {
		return nil
	}
	cp := *d
	if d.location != nil {
		loc := *d.location
		cp.location = &loc
	}
	return &cp
}

func (d *Driver) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDIsRequired
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setCashCapacity(cashCapacity int64) error {
	if cashCapacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cashCapacity", fmt.Errorf("%d is negative", cashCapacity))
	}
	d.cashCapacity = cashCapacity
	return nil
}
