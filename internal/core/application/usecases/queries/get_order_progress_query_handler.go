package queries

import (
	"context"

	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"
)

// GetOrderProgressQueryHandler projects an order's status and stage flags
// into the step-by-step progress view. Unlike the flat read models in
// this package, the projection needs the aggregate's reconciled state, so
// the handler loads it through the repository instead of raw SQL.
type GetOrderProgressQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	projector  services.ProgressProjector
}

// NewGetOrderProgressQueryHandler creates a handler for order progress
// queries.
func NewGetOrderProgressQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderProgressQueryHandler {
	return GetOrderProgressQueryHandler{
		uowFactory: uowFactory,
		projector:  services.NewProgressProjector(),
	}
}

// Handle executes the query to project an order's progress.
// Returns *errs.ObjectNotFoundError when no order has the given ID.
func (h GetOrderProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOrderProgressQuery,
) (services.Progress, error) {
	if err := query.Validate(); err != nil {
		return services.Progress{}, err
	}

	uow := h.uowFactory.Create()
	aggregate, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return services.Progress{}, err
	}

	return h.projector.Project(aggregate, query.Role())
}
