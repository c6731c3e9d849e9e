package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	spec := validSpecification(t)

	cmd, err := commands.NewCreateOrderCommand(id, spec, order.OrderTypeExisting, order.PriorityHigh)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, spec, cmd.Specification())
	assert.Equal(t, order.OrderTypeExisting, cmd.OrderType())
	assert.Equal(t, order.PriorityHigh, cmd.Priority())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(
		invalidID, validSpecification(t), order.OrderTypeNew, order.PriorityMedium)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_UnconstructedSpecification(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Specification{}, order.OrderTypeNew, order.PriorityMedium)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_UnknownOrderType(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), validSpecification(t), order.OrderTypeUnknown, order.PriorityMedium)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_UnknownPriority(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), validSpecification(t), order.OrderTypeNew, order.Priority(99))
	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
