// Package jobs provides scheduled background tasks for the parcel locker service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use six fields with a leading seconds field.
//
// # Available Jobs
//
// 1. RefreshJob - reloads the four datasets and rebuilds the purchase summary
// 2. ReportJob - renders the analytics report and mails it to every user
//
// # Usage
//
//	refresh := jobs.NewRefreshJob(refreshHandler, "0 */5 * * * *", logger)
//	if err := refresh.RunOnce(ctx); err != nil {
//		logger.Error("initial load failed", "error", err)
//	}
//
//	jobManager := jobs.NewJobManager(refresh)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the schedule continues. Failed job starts stop
// any already running jobs.
package jobs
