package event_test

import (
	"encoding/json"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingEvent_MarshalJSON(t *testing.T) {
	pickup, err := kernel.ParseLocation("11.55,104.91")
	require.NoError(t, err)
	drop, err := kernel.ParseLocation("11.57,104.93")
	require.NoError(t, err)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	b, err := booking.NewBooking("BKG1", "C1", pickup, drop, booking.Tuktuk, 2500, "ring twice", createdAt)
	require.NoError(t, err)
	require.NoError(t, b.Assign())

	ev := event.NewBookingUpdated(b.Snapshot(), "D1", createdAt.Add(time.Minute))

	raw, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, ev.ID.String(), decoded["id"])
	assert.Equal(t, "booking_updated", decoded["type"])

	payload, ok := decoded["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "BKG1", payload["id"])
	assert.Equal(t, "C1", payload["customerId"])
	assert.Equal(t, "ASSIGNED", payload["status"])
	assert.Equal(t, "tuktuk", payload["service"])
	assert.Equal(t, "D1", payload["assignedTo"])
	assert.InDelta(t, 2500, payload["cod"], 0)
	assert.Equal(t, map[string]any{"lat": 11.55, "lng": 104.91}, payload["pickup"])
}

func TestNewBookingCreated(t *testing.T) {
	pickup, _ := kernel.NewLocation(1, 1)
	b, err := booking.NewBooking("BKG2", "C2", pickup, pickup, booking.Standard, 0, "", time.Now())
	require.NoError(t, err)

	ev := event.NewBookingCreated(b.Snapshot(), time.Now())

	assert.Equal(t, event.BookingCreated, ev.Type)
	assert.Empty(t, ev.AssignedTo)
	require.NoError(t, ev.ID.Validate())
	assert.NotContains(t, string(mustMarshal(t, ev)), "assignedTo")
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
