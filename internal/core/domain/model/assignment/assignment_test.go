package assignment_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignment(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	a, err := assignment.NewAssignment("BKG1", "D1", at)

	require.NoError(t, err)
	require.NoError(t, a.Validate())
	assert.Equal(t, "BKG1", a.BookingID())
	assert.Equal(t, "D1", a.DriverID())
	assert.Equal(t, at, a.AssignedAt())
	assert.True(t, a.IsOwnedBy("D1"))
	assert.False(t, a.IsOwnedBy("D2"))
}

func TestNewAssignment_Invalid(t *testing.T) {
	_, err := assignment.NewAssignment("", " ", time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "bookingId")
	assert.Contains(t, err.Error(), "driverId")
	assert.Contains(t, err.Error(), "assignedAt")
}

func TestAssignment_ZeroValue(t *testing.T) {
	var a assignment.Assignment
	require.ErrorIs(t, a.Validate(), assignment.ErrAssignmentIsNotConstructed)
}
