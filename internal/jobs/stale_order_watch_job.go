package jobs

import (
	"context"
	"log/slog"
	"time"

	"printshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// staleOrderAge is how long an order may stay active before the watch
// job flags it.
const staleOrderAge = 7 * 24 * time.Hour

// StaleOrderWatchJob periodically flags active orders that have been in
// the pipeline longer than staleOrderAge. Runs hourly; stale orders are
// logged for follow-up, never touched.
type StaleOrderWatchJob struct {
	handler queries.GetActiveOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderWatchJob creates a new job for stale order detection.
// Uses GetActiveOrdersQueryHandler to scan the active order list.
func NewStaleOrderWatchJob(handler queries.GetActiveOrdersQueryHandler, logger *slog.Logger) *StaleOrderWatchJob {
	return &StaleOrderWatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_watch_job"),
	}
}

// Start begins the stale order watch job to run every hour.
func (j *StaleOrderWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetActiveOrdersQuery()

		activeOrders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order watch job failed", "error", err)
			return
		}

		cutoff := time.Now().UTC().Add(-staleOrderAge)
		for _, o := range activeOrders {
			if o.CreatedAt.Before(cutoff) {
				j.logger.WarnContext(ctx, "Order stuck in pipeline",
					"order_id", o.ID.String(),
					"status", o.Status,
					"age_days", int(time.Since(o.CreatedAt).Hours()/24),
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order watch job started (running every hour)")
	return nil
}

// Stop stops the stale order watch job.
func (j *StaleOrderWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order watch job stopped")
}
