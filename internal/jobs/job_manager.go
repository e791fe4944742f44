package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoDispatchJob *AutoDispatchJob
}

// NewJobManager creates a job manager. An empty autoDispatchSchedule leaves auto dispatch
// disabled, so bookings are only dispatched on request.
func NewJobManager(
	autoDispatcher AutoDispatcher,
	autoDispatchSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if autoDispatchSchedule != "" {
		jm.autoDispatchJob = NewAutoDispatchJob(autoDispatcher, autoDispatchSchedule, logger)
	}
	return jm
}

// Jobs reports how many jobs are configured.
func (jm *JobManager) Jobs() int {
	if jm.autoDispatchJob == nil {
		return 0
	}
	return 1
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.autoDispatchJob == nil {
		return nil
	}

	if err := jm.autoDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto dispatch job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.autoDispatchJob != nil {
		jm.autoDispatchJob.Stop()
	}
}
