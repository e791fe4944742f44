package cmd_test

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultConfig(t *testing.T) cmd.Config {
	t.Helper()
	var cfg cmd.Config
	require.NoError(t, envconfig.Process("", &cfg))
	return cfg
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "SEED_DEMO_DRIVER", "DISPATCH_STRATEGY", "STATUS_POLICY", "AUTO_DISPATCH_SCHEDULE",
		"OBSERVER_BUFFER", "KAFKA_HOST", "REDIS_ADDR", "DB_HOST", "DB_SSLMODE",
	} {
		unsetenv(t, key)
	}

	cfg := defaultConfig(t)

	assert.Equal(t, "10000", cfg.HTTPPort)
	assert.True(t, cfg.SeedDemoDriver)
	assert.Equal(t, "first_online", cfg.DispatchStrategy)
	assert.Equal(t, "forward", cfg.StatusPolicy)
	assert.Empty(t, cfg.AutoDispatchSchedule)
	assert.Equal(t, 64, cfg.ObserverBuffer)
	assert.False(t, cfg.KafkaEnabled())
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.JournalEnabled())
	assert.Equal(t, "disable", cfg.Postgres().SslMode)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("DISPATCH_STRATEGY", "nearest")
	t.Setenv("STATUS_POLICY", "lenient")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SEED_DEMO_DRIVER", "false")

	cfg := defaultConfig(t)

	assert.Equal(t, "nearest", cfg.DispatchStrategy)
	assert.Equal(t, "lenient", cfg.StatusPolicy)
	assert.False(t, cfg.SeedDemoDriver)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 2, cfg.Redis().DB)
	assert.Equal(t, "booking-events", cfg.Redis().Channel)
}

func TestNewCompositionRoot_RejectsUnknownNames(t *testing.T) {
	cfg := cmd.Config{DispatchStrategy: "random"}
	_, err := cmd.NewCompositionRoot(cfg, discardLogger())
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, err.Error(), "DISPATCH_STRATEGY")

	cfg = cmd.Config{StatusPolicy: "backwards"}
	_, err = cmd.NewCompositionRoot(cfg, discardLogger())
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, err.Error(), "STATUS_POLICY")
}

func TestCompositionRoot_SeededDriverTakesBookings(t *testing.T) {
	ctx := t.Context()
	app, err := cmd.NewCompositionRoot(cmd.Config{}, discardLogger())
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()

	require.NoError(t, app.AttachSinks(ctx))
	require.NoError(t, app.SeedDemoDriver(ctx))

	pickup, err := kernel.ParseLocation("11.55,104.91")
	require.NoError(t, err)
	drop, err := kernel.ParseLocation("11.57,104.93")
	require.NoError(t, err)
	createCmd, err := commands.NewCreateBookingCommand("C1", pickup, drop, booking.Standard, 0, "")
	require.NoError(t, err)

	b, err := app.CreateCreateBookingCommandHandler().Handle(ctx, createCmd)
	require.NoError(t, err)

	assigned, err := app.CreateAutoDispatchCommandHandler().Handle(ctx, commands.NewAutoDispatchCommand())
	require.NoError(t, err)
	assert.Equal(t, 1, assigned)

	dispatchCmd, err := commands.NewDispatchBookingCommand(b.ID())
	require.NoError(t, err)
	result, err := app.CreateDispatchBookingCommandHandler().Handle(ctx, dispatchCmd)
	require.NoError(t, err)
	assert.True(t, result.AlreadyAssigned)
	assert.Equal(t, cmd.DemoDriverID, result.AssignedTo)
}

func TestCompositionRoot_BuildsHTTPServerAndJobs(t *testing.T) {
	app, err := cmd.NewCompositionRoot(cmd.Config{AutoDispatchSchedule: "@every 1h"}, discardLogger())
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()

	e, err := httpin.NewEcho(app.CreateHTTPServer())
	require.NoError(t, err)
	assert.NotEmpty(t, e.Routes())

	assert.Equal(t, 1, app.CreateJobManager().Jobs())
}

func TestCompositionRoot_EventHistoryNeedsJournal(t *testing.T) {
	app, err := cmd.NewCompositionRoot(cmd.Config{}, discardLogger())
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()
	require.NoError(t, app.AttachSinks(t.Context()))

	query, err := queries.NewGetBookingEventsQuery("BKG1")
	require.NoError(t, err)

	_, err = app.CreateGetBookingEventsQueryHandler().Handle(t.Context(), query)
	require.ErrorIs(t, err, ports.ErrEventHistoryDisabled)
}
