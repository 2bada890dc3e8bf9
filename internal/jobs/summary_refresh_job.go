package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"dashboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule runs the refresh at the top of every minute.
const DefaultRefreshSchedule = "0 * * * * *"

// SummaryRefreshJob periodically recomputes and publishes the dashboard summary.
type SummaryRefreshJob struct {
	handler  commands.RefreshSummaryCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSummaryRefreshJob creates the refresh job. schedule is a cron spec with
// a leading seconds field; an empty schedule uses DefaultRefreshSchedule.
func NewSummaryRefreshJob(handler commands.RefreshSummaryCommandHandler, schedule string, logger *slog.Logger) *SummaryRefreshJob {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}
	return &SummaryRefreshJob{
		handler:  handler,
		schedule: schedule,
		// A slow refresh delays the next tick instead of overlapping it.
		cron:   cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger.With("component", "summary_refresh_job"),
	}
}

// Start schedules the refresh.
func (j *SummaryRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background(), commands.TriggerSchedule)
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Summary refresh job started", "schedule", j.schedule)
	return nil
}

// Run performs one refresh and logs its outcome. Errors are not returned
// because the next tick retries.
func (j *SummaryRefreshJob) Run(ctx context.Context, trigger string) {
	cmd, err := commands.NewRefreshSummaryCommand(trigger)
	if err != nil {
		j.logger.ErrorContext(ctx, "Summary refresh rejected", "trigger", trigger, "error", err)
		return
	}

	if _, err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Summary refresh failed", "trigger", trigger, "error", err)
	}
}

// Stop stops the job and waits for a running refresh to finish.
func (j *SummaryRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Summary refresh job stopped")
}
