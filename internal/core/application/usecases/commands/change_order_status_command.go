package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to a
// target status. The cancellation reason accompanies a Cancelled target;
// the delivery selection accompanies a ReadyForDelivery target.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.ReadyForDelivery, "",
//	    &services.ModeSelection{
//	        Mode:            order.DeliveryShippingCompany,
//	        ShippingCompany: "FastCargo",
//	    })
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errors.Is(err, order.ErrIllegalTransition), ports.ErrConcurrentModification, ...
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	target             order.Status
	cancellationReason string
	delivery           *services.ModeSelection

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to move an order to the
// target status. Target legality against the order's current status is
// decided by the aggregate, not here; the command only checks that the
// target is a defined status.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	cancellationReason string,
	delivery *services.ModeSelection,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		cancellationReason: cancellationReason,
		delivery:           delivery,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// CancellationReason returns the reason accompanying a Cancelled target.
// May be empty.
func (c ChangeOrderStatusCommand) CancellationReason() string {
	return c.cancellationReason
}

// Delivery returns the delivery selection accompanying a ReadyForDelivery
// target, or nil when none was supplied.
func (c ChangeOrderStatusCommand) Delivery() *services.ModeSelection {
	return c.delivery
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
