package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// AutoDispatcher runs one auto-dispatch pass. commands.AutoDispatchCommandHandler
// implements it.
type AutoDispatcher interface {
	Handle(ctx context.Context, cmd commands.AutoDispatchCommand) (int, error)
}

// AutoDispatchJob periodically assigns PENDING bookings to online drivers.
type AutoDispatchJob struct {
	handler  AutoDispatcher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAutoDispatchJob creates the job. schedule is a cron expression with a seconds field
// ("*/5 * * * * *") or a descriptor such as "@every 5s".
func NewAutoDispatchJob(handler AutoDispatcher, schedule string, logger *slog.Logger) *AutoDispatchJob {
	return &AutoDispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "auto_dispatch_job"),
	}
}

// Start schedules the job. An invalid schedule is reported and nothing runs.
func (j *AutoDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto dispatch job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single pass and returns how many bookings it assigned. Running out of
// drivers is an expected outcome and is not logged as a failure.
func (j *AutoDispatchJob) RunOnce(ctx context.Context) int {
	assigned, err := j.handler.Handle(ctx, commands.NewAutoDispatchCommand())
	if err != nil && !errors.Is(err, services.ErrNoDriverAvailable) {
		j.logger.ErrorContext(ctx, "Auto dispatch job failed", "error", err, "assigned", assigned)
		return assigned
	}

	if assigned > 0 {
		j.logger.InfoContext(ctx, "Pending bookings dispatched", "assigned", assigned)
	}
	return assigned
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *AutoDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Auto dispatch job stopped")
}
