package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderInPrepress(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()

	o := submittedOrder(t, id)
	for _, next := range []order.Status{order.Designing, order.DesignDone, order.InPrepress} {
		require.NoError(t, o.ApplyTransition(next, order.TransitionContext{}))
	}
	return o
}

func TestUpdatePrepressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := orderInPrepress(t, id)

	cmd, err := commands.NewUpdatePrepressCommand(id, order.SubProcessWashout, order.StageInProgress)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate, order.InPrepress).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePrepressCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StageInProgress, aggregate.Stages().SubProcesses()[order.SubProcessWashout])

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdatePrepressCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdatePrepressCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdatePrepressCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrUpdatePrepressCommandIsNotConstructed)
}

func TestUpdatePrepressCommandHandler_Handle_PrepressNotActive(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	aggregate := submittedOrder(t, id)

	cmd, err := commands.NewUpdatePrepressCommand(id, order.SubProcessDrying, order.StageCompleted)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePrepressCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrPrepressNotActive)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
