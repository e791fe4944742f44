package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// IDPrefix is prepended to the issuance sequence number to form a booking id.
const IDPrefix = "BKG"

var (
	// ErrBookingIsNotConstructed is returned when a Booking instance was not created through
	// the NewBooking factory method.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
)

// FormatID renders the booking id for the given issuance sequence number, e.g. FormatID(7)
// returns "BKG7". Sequence numbers start at 1.
func FormatID(seq uint64) string {
	return fmt.Sprintf("%s%d", IDPrefix, seq)
}

// Booking is the aggregate root for one delivery job, from creation through dispatch to
// delivery.
//
// Booking follows these invariants:
//   - Must have a non-empty id and customer identifier
//   - Pickup and drop must be constructed locations
//   - Cash on delivery is a non-negative amount in minor currency units
//   - Starts in Pending; only Assign moves it to Assigned
//   - Only driver settable statuses can be applied through Advance
//   - Can only be created through NewBooking constructor
//
// Which driver carries the booking is recorded by the assignment table, not here, so that
// assignment uniqueness is owned by a single component.
type Booking struct {
	// id is the sequential "BKG<n>" identifier issued by the store
	id string

	// customerID identifies who placed the booking, often a phone number
	customerID string

	// pickup is where the parcel is collected
	pickup kernel.Location

	// drop is where the parcel is delivered
	drop kernel.Location

	// service is the delivery mode picked by the customer
	service ServiceTier

	// cod is the cash-on-delivery amount in minor units
	cod int64

	// notes is free text for the driver
	notes string

	// status is the current lifecycle stage
	status Status

	// createdAt orders bookings in listings; never compared for equality
	createdAt time.Time

	// isConstructed ensures the booking was created via NewBooking
	isConstructed bool
}

// NewBooking creates a Pending booking after validating every field.
//
// Parameters:
//   - id: identifier issued by the booking store (see FormatID)
//   - customerID: non-empty customer identifier
//   - pickup, drop: constructed locations
//   - service: delivery tier; use ParseServiceTier to apply the default
//   - cod: cash-on-delivery amount, must not be negative
//   - notes: free text, may be empty
//   - createdAt: creation time used for ordering
//
// Returns:
//   - *Booking: the booking in Pending status
//   - error: every validation failure joined together
//
// Example:
//
//	pickup, _ := kernel.ParseLocation("11.55,104.91")
//	drop, _ := kernel.ParseLocation("11.57,104.93")
//	b, err := booking.NewBooking(booking.FormatID(1), "C1", pickup, drop, booking.Express, 0, "", time.Now())
func NewBooking(
	id string,
	customerID string,
	pickup kernel.Location,
	drop kernel.Location,
	service ServiceTier,
	cod int64,
	notes string,
	createdAt time.Time,
) (*Booking, error) {
	b := &Booking{
		notes:         notes,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomerID(customerID),
		b.setPickup(pickup),
		b.setDrop(drop),
		b.setService(service),
		b.setCOD(cod),
		b.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Booking instance was properly constructed through NewBooking.
func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}

	return nil
}

// ID returns the booking identifier.
func (b *Booking) ID() string {
	return b.id
}

// CustomerID returns the identifier of the customer who placed the booking.
func (b *Booking) CustomerID() string {
	return b.customerID
}

// Pickup returns the collection point.
func (b *Booking) Pickup() kernel.Location {
	return b.pickup
}

// Drop returns the delivery point.
func (b *Booking) Drop() kernel.Location {
	return b.drop
}

// Service returns the delivery tier.
func (b *Booking) Service() ServiceTier {
	return b.service
}

// COD returns the cash-on-delivery amount in minor units.
func (b *Booking) COD() int64 {
	return b.cod
}

// Notes returns the free text notes.
func (b *Booking) Notes() string {
	return b.notes
}

// Status returns the current lifecycle stage.
func (b *Booking) Status() Status {
	return b.status
}

// CreatedAt returns the creation time.
func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

// Assign moves a Pending booking to Assigned. The caller records the driver in the
// assignment table within the same unit of work.
func (b *Booking) Assign() error {
	newStatus, err := b.status.Assign()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Advance applies a driver reported status. It only checks that the status is one a driver
// may report; ordering relative to the current status is the job of the transition policy,
// which the caller consults first.
//
// Returns:
//   - nil when the status was applied
//   - StatusIsInvalidError when to is not driver settable
func (b *Booking) Advance(to Status) error {
	if !to.IsDriverSettable() {
		return errs.NewStatusIsInvalidError(to.String())
	}

	b.status = to
	return nil
}

// Clone returns an independent copy. Stores hand out clones so callers can never mutate
// shared state outside a unit of work.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	cp := *b
	return &cp
}

// Snapshot is a plain, read-only view of a booking used by events and read models.
type Snapshot struct {
	ID         string
	CustomerID string
	Pickup     kernel.Location
	Drop       kernel.Location
	Service    ServiceTier
	COD        int64
	Notes      string
	Status     Status
	CreatedAt  time.Time
}

// Snapshot copies the current state of the booking.
func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:         b.id,
		CustomerID: b.customerID,
		Pickup:     b.pickup,
		Drop:       b.drop,
		Service:    b.service,
		COD:        b.cod,
		Notes:      b.notes,
		Status:     b.status,
		CreatedAt:  b.createdAt,
	}
}

func (b *Booking) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("id")
	}
	b.id = id
	return nil
}

func (b *Booking) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	b.customerID = customerID
	return nil
}

func (b *Booking) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}
	b.pickup = pickup
	return nil
}

func (b *Booking) setDrop(drop kernel.Location) error {
	if err := drop.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("drop", err)
	}
	b.drop = drop
	return nil
}

func (b *Booking) setService(service ServiceTier) error {
	if err := service.Validate(); err != nil {
		return err
	}
	b.service = service
	return nil
}

// setCOD rejects negative amounts; zero means no cash is collected.
func (b *Booking) setCOD(cod int64) error {
	if cod < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cod", fmt.Errorf("%d is negative", cod))
	}
	b.cod = cod
	return nil
}

func (b *Booking) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	b.createdAt = createdAt
	return nil
}
