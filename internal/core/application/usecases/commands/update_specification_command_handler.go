package commands

import (
	"context"

	"printshop/internal/core/domain/services"
)

// UpdateSpecificationCommandHandler replaces an order's specification and
// its cached cost estimate in one guarded update. The aggregate rejects
// the edit once design work has begun.
type UpdateSpecificationCommandHandler struct {
	uowFactory OrderUoWFactory
	estimator  services.PriceEstimator
}

// NewUpdateSpecificationCommandHandler creates a handler for
// specification edits.
func NewUpdateSpecificationCommandHandler(uowFactory OrderUoWFactory) UpdateSpecificationCommandHandler {
	return UpdateSpecificationCommandHandler{
		uowFactory: uowFactory,
		estimator:  services.NewPriceEstimator(),
	}
}

// Handle processes the specification edit: recomputes the estimate from
// the new specification, applies both to the aggregate, and persists with
// the compare-and-swap discipline.
func (h UpdateSpecificationCommandHandler) Handle(ctx context.Context, cmd UpdateSpecificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	estimatedCost, err := h.estimator.Estimate(cmd.Specification())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expectedStatus := aggregate.Status()
	if err = aggregate.UpdateSpecification(cmd.Specification(), estimatedCost); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
