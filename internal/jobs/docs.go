// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AutoDispatchJob - dispatches PENDING bookings in creation order until every one is
// assigned or no driver is online
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager; an empty schedule disables auto dispatch
//	jobManager := jobs.NewJobManager(autoDispatchHandler, "@every 5s", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field, or descriptors such as
// "@every 5s". A tick that arrives while the previous pass is still running is skipped.
//
// # Error Handling
//
// - Running out of online drivers is an expected outcome and is not logged as an error
// - A booking dispatched manually while the job runs is skipped by the idempotence rule
package jobs
