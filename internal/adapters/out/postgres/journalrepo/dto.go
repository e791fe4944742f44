// Package journalrepo keeps an append-only journal of booking lifecycle events in Postgres.
// The live booking state stays in memory; the journal is an audit trail that survives
// restarts and can be queried per booking.
package journalrepo

import (
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/event"

	"github.com/google/uuid"
)

// EventDTO is one journal row. The full envelope is kept in Payload; the other columns are
// copies for indexing and ad hoc queries.
type EventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID  string    `gorm:"type:varchar(64);index;not null"`
	Type       string    `gorm:"type:varchar(32);not null"`
	Status     string    `gorm:"type:varchar(32);not null"`
	DriverID   *string   `gorm:"type:varchar(64);index"`
	Payload    string    `gorm:"type:jsonb;not null"`
	OccurredAt time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for journal rows.
func (EventDTO) TableName() string {
	return "booking_events"
}

func fromDomain(ev event.BookingEvent) (EventDTO, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return EventDTO{}, err
	}

	var driverID *string
	if ev.AssignedTo != "" {
		id := ev.AssignedTo
		driverID = &id
	}

	return EventDTO{
		ID:         ev.ID.Bytes(),
		BookingID:  ev.Booking.ID,
		Type:       string(ev.Type),
		Status:     ev.Booking.Status.String(),
		DriverID:   driverID,
		Payload:    string(payload),
		OccurredAt: ev.OccurredAt.UTC(),
	}, nil
}

func toEnvelope(dto EventDTO) (event.Envelope, error) {
	var envelope event.Envelope
	if err := json.Unmarshal([]byte(dto.Payload), &envelope); err != nil {
		return event.Envelope{}, err
	}
	return envelope, nil
}
