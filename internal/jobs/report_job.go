package jobs

import (
	"context"
	"log/slog"

	"parcellocker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReportHandler sends the analytics report.
type ReportHandler interface {
	Handle(ctx context.Context, cmd commands.SendReportCommand) error
}

// ReportJob mails the analytics report to every user on a cron schedule.
type ReportJob struct {
	handler  ReportHandler
	cmd      commands.SendReportCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReportJob creates the job sending cmd on schedule (six fields, seconds first).
func NewReportJob(handler ReportHandler, cmd commands.SendReportCommand, schedule string, logger *slog.Logger) *ReportJob {
	return &ReportJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "report_job"),
	}
}

// Start schedules the job.
func (j *ReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.handler.Handle(ctx, j.cmd); err != nil {
			j.logger.ErrorContext(ctx, "Report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Report job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running send to finish.
func (j *ReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Report job stopped")
}
