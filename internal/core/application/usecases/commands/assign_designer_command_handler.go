package commands

import "context"

// AssignDesignerCommandHandler attaches a designer reference to an order
// that has not reached a terminal status.
type AssignDesignerCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignDesignerCommandHandler creates a handler for designer
// assignment.
func NewAssignDesignerCommandHandler(uowFactory OrderUoWFactory) AssignDesignerCommandHandler {
	return AssignDesignerCommandHandler{uowFactory: uowFactory}
}

// Handle processes the designer assignment command.
func (h AssignDesignerCommandHandler) Handle(ctx context.Context, cmd AssignDesignerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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
	if err = aggregate.AssignDesigner(cmd.DesignerID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
