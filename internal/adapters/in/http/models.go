package http

import (
	"bytes"
	"encoding/json"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health is the body of GET /api/health.
type Health struct {
	Ok bool `json:"ok"`
}

// Location is a coordinate pair on the wire.
type Location = event.LocationPayload

// Booking shares its JSON form with the booking inside event envelopes, so observers and
// REST clients see identical documents.
type Booking = event.BookingPayload

// BookingEvent is one entry of a booking's event history, in the same envelope the event
// stream and the sinks carry.
type BookingEvent = event.Envelope

// LocationInput is a coordinate in a request body, given either as a "lat,lng" string or as a
// {"lat": ..., "lng": ...} object. The value is parsed while decoding; Resolve reports the
// outcome so the error can name the field it came from.
type LocationInput struct {
	location kernel.Location
	err      error
}

// UnmarshalJSON accepts null, a string or an object. Any other JSON type is a decoding error.
func (l *LocationInput) UnmarshalJSON(data []byte) error {
	*l = LocationInput{}

	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			return nil
		}
		l.location, l.err = kernel.ParseLocation(raw)
	default:
		var obj struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Lat == nil || obj.Lng == nil {
			l.err = errs.NewValueIsRequiredError("lat and lng")
			return nil
		}
		l.location, l.err = kernel.NewLocation(*obj.Lat, *obj.Lng)
	}
	return nil
}

// Resolve returns the decoded location. An absent value yields the zero Location, which the
// commands report as a missing field.
func (l LocationInput) Resolve(field string) (kernel.Location, error) {
	if l.err != nil {
		return kernel.Location{}, errs.NewValueIsInvalidErrorWithCause(field, l.err)
	}
	return l.location, nil
}

// NewBooking is the body of POST /api/bookings.
type NewBooking struct {
	CustomerID    string        `json:"customerId"`
	CustomerPhone string        `json:"customerPhone"`
	Pickup        LocationInput `json:"pickup"`
	Drop          LocationInput `json:"drop"`
	Service       string        `json:"service"`
	COD           int64         `json:"cod"`
	Notes         string        `json:"notes"`
}

// DispatchResult is the body of a successful dispatch.
type DispatchResult struct {
	Ok         bool     `json:"ok"`
	AssignedTo string   `json:"assignedTo"`
	Booking    *Booking `json:"booking,omitempty"`
}

// StatusUpdate is the body of a driver status report.
type StatusUpdate struct {
	Status string `json:"status"`
}

// NewDriver is the body of POST /api/drivers.
type NewDriver struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Availability string `json:"availability"`
	CashCapacity int64  `json:"cashCapacity"`
}

// Driver is a registry entry on the wire.
type Driver struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Availability string    `json:"availability"`
	CashCapacity int64     `json:"cashCapacity"`
	Location     *Location `json:"location,omitempty"`
}

type AvailabilityUpdate struct {
	Availability string `json:"availability"`
}

type LocationUpdate struct {
	Location LocationInput `json:"location"`
}

type OTPRequest struct {
	Phone string `json:"phone"`
}

type OTPRequested struct {
	Ok      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OTPVerify struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type OTPVerified struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID    string `json:"id"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toBooking(view ports.BookingView) Booking {
	return event.NewBookingPayload(view.Booking, view.AssignedTo)
}

func toBookings(views []ports.BookingView) []Booking {
	response := make([]Booking, len(views))
	for i, view := range views {
		response[i] = toBooking(view)
	}
	return response
}

func toDriver(d *driver.Driver) Driver {
	response := Driver{
		ID:           d.ID(),
		Name:         d.Name(),
		Availability: d.Availability().String(),
		CashCapacity: d.CashCapacity(),
	}
	if loc, ok := d.Location(); ok {
		response.Location = &Location{Lat: loc.Lat(), Lng: loc.Lng()}
	}
	return response
}

func toDrivers(drivers []*driver.Driver) []Driver {
	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = toDriver(d)
	}
	return response
}

func toUser(identity ports.Identity) User {
	return User{
		ID:    identity.Phone,
		Phone: identity.Phone,
		Name:  identity.Name,
		Role:  identity.Role,
	}
}
