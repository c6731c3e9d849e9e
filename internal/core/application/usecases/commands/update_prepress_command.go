package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var (
	ErrUpdatePrepressCommandIsNotConstructed = errors.New(
		"UpdatePrepressCommand must be created via NewUpdatePrepressCommand constructor",
	)
)

// UpdatePrepressCommand records progress on a single prepress sub-process
// of an order currently in the prepress stage.
type UpdatePrepressCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	subProcess order.SubProcess
	status     order.StageStatus

	guard guard.ConstructorGuard
}

// NewUpdatePrepressCommand creates a command to set a prepress
// sub-process to the given stage status.
func NewUpdatePrepressCommand(
	orderID kernel.UUID,
	subProcess order.SubProcess,
	status order.StageStatus,
) (UpdatePrepressCommand, error) {
	cmd := UpdatePrepressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSubProcess(subProcess),
		cmd.setStatus(status),
	); err != nil {
		return UpdatePrepressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePrepressCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePrepressCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being worked on.
func (c UpdatePrepressCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SubProcess returns the prepress sub-process to update.
func (c UpdatePrepressCommand) SubProcess() order.SubProcess {
	return c.subProcess
}

// Status returns the stage status to record for the sub-process.
func (c UpdatePrepressCommand) Status() order.StageStatus {
	return c.status
}

func (c *UpdatePrepressCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdatePrepressCommand) setSubProcess(p order.SubProcess) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.subProcess = p
	return nil
}

func (c *UpdatePrepressCommand) setStatus(s order.StageStatus) error {
	if err := s.Validate(); err != nil {
		return err
	}

	c.status = s
	return nil
}
