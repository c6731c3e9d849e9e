package jobs

import (
	"fmt"
	"log/slog"

	"printshop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	backlogReportJob   *BacklogReportJob
	staleOrderWatchJob *StaleOrderWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	backlogHandler queries.GetStatusBacklogQueryHandler,
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		backlogReportJob:   NewBacklogReportJob(backlogHandler, logger),
		staleOrderWatchJob: NewStaleOrderWatchJob(activeOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.backlogReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start backlog report job: %w", err)
	}

	if err := jm.staleOrderWatchJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.backlogReportJob.Stop()
		return fmt.Errorf("failed to start stale order watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderWatchJob.Stop()
	jm.backlogReportJob.Stop()
}
