package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new print order
// from a client-submitted specification.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, spec, order.OrderTypeNew, order.PriorityMedium)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, estimator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	spec      order.Specification
	orderType order.OrderType
	priority  order.Priority

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new print order.
// The specification, order type, and priority must all be valid.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	spec order.Specification,
	orderType order.OrderType,
	priority order.Priority,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSpecification(spec),
		cmd.setOrderType(orderType),
		cmd.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Specification returns the submitted print specification.
func (c CreateOrderCommand) Specification() order.Specification {
	return c.spec
}

// OrderType returns the order classification.
func (c CreateOrderCommand) OrderType() order.OrderType {
	return c.orderType
}

// Priority returns the production priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setSpecification(spec order.Specification) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	c.spec = spec
	return nil
}

func (c *CreateOrderCommand) setOrderType(t order.OrderType) error {
	if err := t.Validate(); err != nil {
		return err
	}

	c.orderType = t
	return nil
}

func (c *CreateOrderCommand) setPriority(p order.Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.priority = p
	return nil
}
