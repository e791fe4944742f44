package journalrepo

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

var (
	_ ports.EventSink    = (*GormEventJournal)(nil)
	_ ports.EventHistory = (*GormEventJournal)(nil)
)

// GormEventJournal stores events using GORM. It is attached to the event hub as a sink and
// serves the per booking event history.
type GormEventJournal struct {
	db *gorm.DB
}

// NewGormEventJournal creates a journal over db. The caller owns db and closes it.
func NewGormEventJournal(db *gorm.DB) *GormEventJournal {
	return &GormEventJournal{db: db}
}

// Name identifies the sink in logs.
func (r *GormEventJournal) Name() string {
	return "postgres:" + EventDTO{}.TableName()
}

// Deliver appends ev to the journal. Delivering the same event twice is rejected by the
// primary key.
func (r *GormEventJournal) Deliver(ctx context.Context, ev event.BookingEvent) error {
	if err := ev.ID.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", ev.ID.String(), err)
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByBooking returns the journaled events of one booking, oldest first. It backs
// GET /api/bookings/{id}/events.
func (r *GormEventJournal) ListByBooking(ctx context.Context, bookingID string) ([]event.Envelope, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, errs.NewValueIsRequiredError("bookingId")
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("occurred_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	envelopes := make([]event.Envelope, 0, len(dtos))
	for _, dto := range dtos {
		envelope, decodeErr := toEnvelope(dto)
		if decodeErr != nil {
			return nil, decodeErr
		}
		envelopes = append(envelopes, envelope)
	}
	return envelopes, nil
}

// Close is a no-op; the database handle belongs to the caller.
func (r *GormEventJournal) Close() error {
	return nil
}
