package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var (
	ErrUpdateSpecificationCommandIsNotConstructed = errors.New(
		"UpdateSpecificationCommand must be created via NewUpdateSpecificationCommand constructor",
	)
)

// UpdateSpecificationCommand represents a staff edit of an order's print
// specification prior to production. The cost estimate is recomputed from
// the new specification in the same operation.
type UpdateSpecificationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	spec    order.Specification

	guard guard.ConstructorGuard
}

// NewUpdateSpecificationCommand creates a command to replace an order's
// specification.
func NewUpdateSpecificationCommand(
	orderID kernel.UUID,
	spec order.Specification,
) (UpdateSpecificationCommand, error) {
	cmd := UpdateSpecificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSpecification(spec),
	); err != nil {
		return UpdateSpecificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSpecificationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSpecificationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateSpecificationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Specification returns the replacement specification.
func (c UpdateSpecificationCommand) Specification() order.Specification {
	return c.spec
}

func (c *UpdateSpecificationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateSpecificationCommand) setSpecification(spec order.Specification) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	c.spec = spec
	return nil
}
