// Package jobs provides scheduled background tasks for the print shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operational reporting.
//
// # Available Jobs
//
// 1. BacklogReportJob - Runs every minute to log active order counts per pipeline status
// 2. StaleOrderWatchJob - Runs every hour to flag orders stuck in the pipeline
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(backlogHandler, activeOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are read-only: failures are logged and the next tick retries
// from scratch, so a transient database error never requires operator
// action beyond watching the logs.
package jobs
