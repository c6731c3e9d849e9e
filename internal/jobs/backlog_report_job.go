package jobs

import (
	"context"
	"log/slog"

	"printshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BacklogReportJob periodically logs how many active orders sit in each
// pipeline status. Runs every minute so shift leads can watch stages
// backing up without polling the API.
type BacklogReportJob struct {
	handler queries.GetStatusBacklogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBacklogReportJob creates a new job for backlog reporting.
// Uses GetStatusBacklogQueryHandler to count active orders per status.
func NewBacklogReportJob(handler queries.GetStatusBacklogQueryHandler, logger *slog.Logger) *BacklogReportJob {
	return &BacklogReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "backlog_report_job"),
	}
}

// Start begins the backlog report job to run every minute.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetStatusBacklogQuery()

		backlog, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", err)
			return
		}

		if len(backlog) == 0 {
			return
		}

		attrs := make([]any, 0, len(backlog)*2)
		for _, entry := range backlog {
			attrs = append(attrs, entry.Status, entry.Count)
		}
		j.logger.InfoContext(ctx, "Order backlog", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started (running every minute)")
	return nil
}

// Stop stops the backlog report job.
func (j *BacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}
