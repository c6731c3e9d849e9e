package queries

import (
	"context"

	"printshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStatusBacklogQueryHandler counts active orders grouped by pipeline
// status. Terminal orders are excluded; statuses with no orders are
// absent from the result.
type GetStatusBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusBacklogQueryHandler creates a handler for backlog count
// queries. Requires a GORM database connection for query execution.
func NewGetStatusBacklogQueryHandler(db *gorm.DB) GetStatusBacklogQueryHandler {
	return GetStatusBacklogQueryHandler{db: db}
}

// Handle executes the query to count active orders per status.
// Results are sorted in pipeline order.
func (h GetStatusBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetStatusBacklogQuery,
) ([]GetStatusBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	backlog := make([]GetStatusBacklogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		WHERE status NOT IN (?, ?)
		GROUP BY status
		ORDER BY status
	`, order.Completed, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetStatusBacklogQueryResponse
		var status int

		if err = rows.Scan(&status, &entry.Count); err != nil {
			return nil, err
		}

		entry.Status = order.Status(status).String()
		backlog = append(backlog, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return backlog, nil
}
