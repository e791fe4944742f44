// Package event defines the booking lifecycle events broadcast to observers and their JSON
// envelope.
package event

import (
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
)

// Type names an event kind on the wire.
type Type string

const (
	// BookingCreated is emitted exactly once per successful booking creation.
	BookingCreated Type = "booking_created"
	// BookingUpdated is emitted exactly once per successful dispatch or status transition.
	BookingUpdated Type = "booking_updated"
)

// BookingEvent carries a copy of the booking as it was right after the mutation that
// raised the event. It never references live store state.
type BookingEvent struct {
	ID         kernel.UUID
	Type       Type
	Booking    booking.Snapshot
	AssignedTo string
	OccurredAt time.Time
}

// NewBookingCreated builds the event raised by booking creation.
func NewBookingCreated(snapshot booking.Snapshot, occurredAt time.Time) BookingEvent {
	return BookingEvent{
		ID:         kernel.NewUUID(),
		Type:       BookingCreated,
		Booking:    snapshot,
		OccurredAt: occurredAt,
	}
}

// NewBookingUpdated builds the event raised by dispatch and by driver status reports.
// assignedTo is the driver bound to the booking.
func NewBookingUpdated(snapshot booking.Snapshot, assignedTo string, occurredAt time.Time) BookingEvent {
	return BookingEvent{
		ID:         kernel.NewUUID(),
		Type:       BookingUpdated,
		Booking:    snapshot,
		AssignedTo: assignedTo,
		OccurredAt: occurredAt,
	}
}

// LocationPayload is the JSON form of a coordinate.
type LocationPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BookingPayload is the JSON form of a booking inside an event.
type BookingPayload struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Pickup     LocationPayload `json:"pickup"`
	Drop       LocationPayload `json:"drop"`
	Service    string          `json:"service"`
	COD        int64           `json:"cod"`
	Notes      string          `json:"notes"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	AssignedTo string          `json:"assignedTo,omitempty"`
}

// Envelope is the JSON document external sinks receive.
type Envelope struct {
	ID         string         `json:"id"`
	Type       Type           `json:"type"`
	Booking    BookingPayload `json:"booking"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// NewBookingPayload converts a snapshot to its JSON form.
func NewBookingPayload(snapshot booking.Snapshot, assignedTo string) BookingPayload {
	return BookingPayload{
		ID:         snapshot.ID,
		CustomerID: snapshot.CustomerID,
		Pickup:     LocationPayload{Lat: snapshot.Pickup.Lat(), Lng: snapshot.Pickup.Lng()},
		Drop:       LocationPayload{Lat: snapshot.Drop.Lat(), Lng: snapshot.Drop.Lng()},
		Service:    snapshot.Service.String(),
		COD:        snapshot.COD,
		Notes:      snapshot.Notes,
		Status:     snapshot.Status.String(),
		CreatedAt:  snapshot.CreatedAt,
		AssignedTo: assignedTo,
	}
}

// Envelope returns the JSON envelope for the event.
func (e BookingEvent) Envelope() Envelope {
	return Envelope{
		ID:         e.ID.String(),
		Type:       e.Type,
		Booking:    NewBookingPayload(e.Booking, e.AssignedTo),
		OccurredAt: e.OccurredAt,
	}
}

// MarshalJSON encodes the event as its Envelope.
func (e BookingEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Envelope())
}
