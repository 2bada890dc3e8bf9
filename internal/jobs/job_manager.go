package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"dashboard/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	summaryRefreshJob *SummaryRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	refreshSummaryHandler commands.RefreshSummaryCommandHandler,
	refreshSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		summaryRefreshJob: NewSummaryRefreshJob(refreshSummaryHandler, refreshSchedule, logger),
	}
}

// StartAll publishes a first summary and then starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll(ctx context.Context) error {
	jm.summaryRefreshJob.Run(ctx, commands.TriggerStartup)

	if err := jm.summaryRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start summary refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.summaryRefreshJob.Stop()
}
