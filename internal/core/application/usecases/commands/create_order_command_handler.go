package commands

import (
	"context"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
)

// CreateOrderCommandHandler handles order creation. The estimated cost is
// computed from the submitted specification before the order is built, so
// the cached estimate can never disagree with the specification.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	estimator  services.PriceEstimator
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		estimator:  services.NewPriceEstimator(),
	}
}

// Handle processes the order creation command: estimates the cost,
// creates the order in Submitted status, and persists it transactionally.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.Specification(), cmd.OrderType(), cmd.Priority(), estimatedCost)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
