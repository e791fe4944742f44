package driver_test

import (
	"testing"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("valid driver", func(t *testing.T) {
		d, err := driver.NewDriver("DRV1", "Demo Rider", driver.Online, 10000)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "DRV1", d.ID())
		assert.Equal(t, "Demo Rider", d.Name())
		assert.True(t, d.IsOnline())
		assert.Equal(t, int64(10000), d.CashCapacity())
		_, hasLocation := d.Location()
		assert.False(t, hasLocation)
	})

	t.Run("invalid fields are all reported", func(t *testing.T) {
		d, err := driver.NewDriver("", "", driver.UnknownAvailability, -1)

		require.Error(t, err)
		assert.Nil(t, d)
		require.ErrorIs(t, err, driver.ErrIDIsRequired)
		require.ErrorIs(t, err, driver.ErrNameIsRequired)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "cashCapacity")
		assert.Contains(t, err.Error(), "availability")
	})
}

func TestDriver_ZeroValue(t *testing.T) {
	var d driver.Driver
	require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
}

func TestDriver_SetAvailability(t *testing.T) {
	d, err := driver.NewDriver("D1", "Rider", driver.Offline, 0)
	require.NoError(t, err)

	require.NoError(t, d.SetAvailability(driver.Online))
	assert.True(t, d.IsOnline())

	require.Error(t, d.SetAvailability(driver.Availability(9)))
	assert.Equal(t, driver.Online, d.Availability())
}

func TestDriver_ReportLocation(t *testing.T) {
	d, err := driver.NewDriver("D1", "Rider", driver.Online, 0)
	require.NoError(t, err)

	require.Error(t, d.ReportLocation(kernel.Location{}))

	loc, err := kernel.NewLocation(11.56, 104.92)
	require.NoError(t, err)
	require.NoError(t, d.ReportLocation(loc))

	got, ok := d.Location()
	require.True(t, ok)
	assert.Equal(t, "11.56,104.92", got.String())
}

func TestDriver_Clone(t *testing.T) {
	d, err := driver.NewDriver("D1", "Rider", driver.Online, 0)
	require.NoError(t, err)
	loc, err := kernel.NewLocation(1, 1)
	require.NoError(t, err)
	require.NoError(t, d.ReportLocation(loc))

	cp := d.Clone()
	require.NoError(t, cp.SetAvailability(driver.Offline))
	require.NoError(t, cp.Rename("Renamed", 50))

	assert.True(t, d.IsOnline())
	assert.Equal(t, "Rider", d.Name())
	assert.Equal(t, "Renamed", cp.Name())
	assert.Equal(t, int64(50), cp.CashCapacity())
}

func TestParseAvailability(t *testing.T) {
	for _, raw := range []string{"offline", "online", "busy"} {
		a, err := driver.ParseAvailability(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, a.String())
	}

	for _, raw := range []string{"", "unknown", "ONLINE", "asleep"} {
		_, err := driver.ParseAvailability(raw)
		require.ErrorIs(t, err, errs.ErrValidation, raw)
	}
}
