package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrAssignDesignerCommandIsNotConstructed = errors.New(
		"AssignDesignerCommand must be created via NewAssignDesignerCommand constructor",
	)
)

// AssignDesignerCommand attaches a designer to an active order.
type AssignDesignerCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	designerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDesignerCommand creates a command to assign a designer to an
// order.
func NewAssignDesignerCommand(orderID, designerID kernel.UUID) (AssignDesignerCommand, error) {
	cmd := AssignDesignerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDesignerID(designerID),
	); err != nil {
		return AssignDesignerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDesignerCommand) Validate() error {
	return c.guard.Validate(ErrAssignDesignerCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c AssignDesignerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DesignerID returns the identifier of the designer to assign.
func (c AssignDesignerCommand) DesignerID() kernel.UUID {
	return c.designerID
}

func (c *AssignDesignerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDesignerCommand) setDesignerID(designerID kernel.UUID) error {
	if err := designerID.Validate(); err != nil {
		return err
	}

	c.designerID = designerID
	return nil
}
