package queries

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var (
	ErrGetStatusBacklogQueryIsNotConstructed = errors.New(
		"GetStatusBacklogQuery must be created via NewGetStatusBacklogQuery constructor",
	)
)

// GetStatusBacklogQuery counts active orders per pipeline status. The
// result feeds the periodic backlog report and capacity dashboards.
type GetStatusBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusBacklogQuery creates a query for the per-status backlog.
func NewGetStatusBacklogQuery() GetStatusBacklogQuery {
	return GetStatusBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusBacklogQueryIsNotConstructed)
}

// GetStatusBacklogQueryResponse is the order count for one pipeline
// status.
type GetStatusBacklogQueryResponse struct {
	Status string
	Count  int
}
