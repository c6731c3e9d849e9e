package commands

import "context"

// UpdatePrepressCommandHandler persists progress on a prepress
// sub-process. Concurrency is guarded at the whole-order level: a status
// transition racing with this edit loses one side to a concurrent
// modification error instead of silently merging.
type UpdatePrepressCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdatePrepressCommandHandler creates a handler for prepress
// sub-process updates.
func NewUpdatePrepressCommandHandler(uowFactory OrderUoWFactory) UpdatePrepressCommandHandler {
	return UpdatePrepressCommandHandler{uowFactory: uowFactory}
}

// Handle processes the sub-process update command.
func (h UpdatePrepressCommandHandler) Handle(ctx context.Context, cmd UpdatePrepressCommand) error {
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
	if err = aggregate.SetPrepressSubProcess(cmd.SubProcess(), cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
