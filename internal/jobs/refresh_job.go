package jobs

import (
	"context"
	"log/slog"

	"parcellocker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RefreshHandler runs one refresh cycle.
type RefreshHandler interface {
	Handle(ctx context.Context, cmd commands.RefreshDataCommand) error
}

// RefreshJob reloads every dataset on a cron schedule. A run that is still
// going when the next one is due makes that next run skip.
type RefreshJob struct {
	handler  RefreshHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRefreshJob creates the job. schedule is a six-field cron expression
// with a leading seconds field, for example "0 */5 * * * *".
func NewRefreshJob(handler RefreshHandler, schedule string, logger *slog.Logger) *RefreshJob {
	return &RefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "refresh_job"),
	}
}

// RunOnce runs a single refresh cycle in the calling goroutine.
func (j *RefreshJob) RunOnce(ctx context.Context) error {
	return j.handler.Handle(ctx, commands.NewRefreshDataCommand())
}

// Start schedules the job.
func (j *RefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Refresh job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running cycle to finish.
func (j *RefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Refresh job stopped")
}
