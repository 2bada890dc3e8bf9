// Package jobs provides scheduled background tasks for the dashboard.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SummaryRefreshJob - Recomputes the summary from the full delivery store
// and publishes it for GET /api/v1/summary/latest
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshSummaryHandler, "0 * * * * *", logger)
//
//	// Publish a first summary and start all jobs
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules carry a leading seconds field. REFRESH_SCHEDULE overrides the
// default of once a minute; descriptors such as "@every 30s" are accepted.
// A tick that fires while the previous refresh is still running is skipped.
//
// # Error Handling
//
// - Refresh failures are logged and retried on the next tick
// - A summary computed for an older instant than the published one is discarded
// - An invalid schedule fails StartAll
package jobs
