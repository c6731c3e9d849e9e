package commands

import (
	"context"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler applies a status transition to an order
// as a single atomic read-modify-write: the order is loaded, the
// transition applied in memory, and the result persisted with a
// compare-and-swap guarded by the status read at load time. If another
// writer advanced the order in between, the update fails with a
// ConcurrentModification error and nothing is written.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.DeliveryDispatcher
}

// NewChangeOrderStatusCommandHandler creates a handler for status
// transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDeliveryDispatcher(),
	}
}

// Handle processes the status change command. Any delivery selection is
// validated through the DeliveryDispatcher before the transition is
// attempted, so an invalid payload fails the whole operation atomically.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	transitionCtx := order.TransitionContext{
		CancellationReason: cmd.CancellationReason(),
	}
	if selection := cmd.Delivery(); selection != nil {
		info, err := h.dispatcher.Validate(*selection)
		if err != nil {
			return err
		}
		transitionCtx.Delivery = &info
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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
	if err = aggregate.ApplyTransition(cmd.Target(), transitionCtx); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
