package services

import (
	"printshop/internal/core/domain/model/order"
)

// ModeSelection is the raw delivery payload a caller submits when moving
// an order toward delivery. Exactly the fields for the selected mode must
// be present; the dispatcher rejects everything else.
type ModeSelection struct {
	Mode            order.DeliveryMode
	Destination     *order.Address
	ShippingCompany string
	Collection      *order.Address
}

// DeliveryDispatcher is a domain service that validates and normalizes a
// ModeSelection into the DeliveryInfo value the status engine attaches
// when an order enters ReadyForDelivery.
//
// The dispatcher only validates the payload; it never performs status
// transitions. Switching modes after ReadyForDelivery has been entered
// requires reverting through the status engine first.
type DeliveryDispatcher struct{}

// NewDeliveryDispatcher creates a new DeliveryDispatcher instance.
func NewDeliveryDispatcher() DeliveryDispatcher {
	return DeliveryDispatcher{}
}

// Validate builds a DeliveryInfo from the selection, or returns an
// *order.InvalidDeliveryContextError carrying field-level detail.
//
// Required fields per mode:
//   - Direct: destination with street plus at least one other field
//   - ShippingCompany: non-empty carrier name
//   - ClientCollection: collection address, same rule as Direct
func (d DeliveryDispatcher) Validate(selection ModeSelection) (order.DeliveryInfo, error) {
	switch selection.Mode {
	case order.DeliveryDirect:
		if selection.Destination == nil {
			return order.DeliveryInfo{}, order.NewInvalidDeliveryContextError(selection.Mode, "destination")
		}
		return order.NewDirectDelivery(*selection.Destination)

	case order.DeliveryShippingCompany:
		return order.NewShippingCompanyDelivery(selection.ShippingCompany)

	case order.DeliveryClientCollection:
		if selection.Collection == nil {
			return order.DeliveryInfo{}, order.NewInvalidDeliveryContextError(selection.Mode, "collection")
		}
		return order.NewClientCollectionDelivery(*selection.Collection)

	default:
		return order.DeliveryInfo{}, order.NewInvalidDeliveryContextErrorWithCause(
			selection.Mode, "mode", selection.Mode.Validate())
	}
}
