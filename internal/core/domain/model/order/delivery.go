package order

import (
	"errors"
	"fmt"
	"strings"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrDeliveryInfoIsNotConstructed is returned when a DeliveryInfo was not
// created through one of its mode constructors.
var ErrDeliveryInfoIsNotConstructed = errors.New(
	"DeliveryInfo must be created via NewDirectDelivery, NewShippingCompanyDelivery, or NewClientCollectionDelivery",
)

// DeliveryMode identifies how an order is fulfilled after production.
// Exactly one mode is active per order.
type DeliveryMode int

const (
	// DeliveryModeUnknown represents an invalid or undefined mode.
	DeliveryModeUnknown DeliveryMode = iota

	// DeliveryDirect is a direct handover to a destination address.
	DeliveryDirect

	// DeliveryShippingCompany hands the order to a named third-party carrier.
	DeliveryShippingCompany

	// DeliveryClientCollection means the client picks the order up at a
	// collection address.
	DeliveryClientCollection
)

func getDeliveryModeStrings() map[DeliveryMode]string {
	return map[DeliveryMode]string{
		DeliveryModeUnknown:      "Unknown",
		DeliveryDirect:           "Direct",
		DeliveryShippingCompany:  "ShippingCompany",
		DeliveryClientCollection: "ClientCollection",
	}
}

// Validate checks that the mode is one of the three fulfilment modes.
func (m DeliveryMode) Validate() error {
	if m == DeliveryModeUnknown {
		return errs.NewValueIsRequiredError("deliveryMode")
	}
	if _, ok := getDeliveryModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryMode",
			fmt.Errorf("%d is not a valid delivery mode", m))
	}
	return nil
}

// String returns the mode name.
func (m DeliveryMode) String() string {
	if str, ok := getDeliveryModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// ParseDeliveryMode converts a mode name into a DeliveryMode value.
func ParseDeliveryMode(s string) (DeliveryMode, error) {
	for m, name := range getDeliveryModeStrings() {
		if m != DeliveryModeUnknown && name == s {
			return m, nil
		}
	}
	return DeliveryModeUnknown, errs.NewValueIsInvalidErrorWithCause("deliveryMode",
		fmt.Errorf("%q is not a valid delivery mode", s))
}

// Address is the postal address shape shared by the Direct destination and
// the ClientCollection pickup location. It is a plain data carrier;
// required-field rules are enforced by the DeliveryInfo constructors.
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// hasSecondaryField reports whether any field besides the street is set.
func (a Address) hasSecondaryField() bool {
	return strings.TrimSpace(a.City) != "" ||
		strings.TrimSpace(a.State) != "" ||
		strings.TrimSpace(a.PostalCode) != "" ||
		strings.TrimSpace(a.Country) != ""
}

// DeliveryInfo is the tagged variant describing how an order will be
// fulfilled. Exactly one mode is active, each with its own required
// fields:
//
//   - Direct: destination address, street plus at least one other field
//   - ShippingCompany: non-empty carrier name
//   - ClientCollection: pickup address, same rule as Direct
//
// DeliveryInfo is immutable once constructed. Switching modes after the
// order entered ReadyForDelivery requires reverting the status first;
// the type itself never performs transitions.
type DeliveryInfo struct {
	mode            DeliveryMode
	address         Address
	shippingCompany string

	guard guard.ConstructorGuard
}

// NewDirectDelivery creates DeliveryInfo for a direct handover to the
// given destination address.
func NewDirectDelivery(destination Address) (DeliveryInfo, error) {
	if err := validateAddress(DeliveryDirect, "destination", destination); err != nil {
		return DeliveryInfo{}, err
	}

	return DeliveryInfo{
		mode:    DeliveryDirect,
		address: destination,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewShippingCompanyDelivery creates DeliveryInfo for fulfilment through
// a named third-party carrier.
func NewShippingCompanyDelivery(company string) (DeliveryInfo, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return DeliveryInfo{}, NewInvalidDeliveryContextError(DeliveryShippingCompany, "shippingCompany")
	}

	return DeliveryInfo{
		mode:            DeliveryShippingCompany,
		shippingCompany: company,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// NewClientCollectionDelivery creates DeliveryInfo for client pickup at
// the given collection address.
func NewClientCollectionDelivery(collection Address) (DeliveryInfo, error) {
	if err := validateAddress(DeliveryClientCollection, "collection", collection); err != nil {
		return DeliveryInfo{}, err
	}

	return DeliveryInfo{
		mode:    DeliveryClientCollection,
		address: collection,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func validateAddress(mode DeliveryMode, field string, addr Address) error {
	if strings.TrimSpace(addr.Street) == "" {
		return NewInvalidDeliveryContextError(mode, field+".street")
	}
	if !addr.hasSecondaryField() {
		return NewInvalidDeliveryContextErrorWithCause(mode, field,
			errors.New("at least one field besides the street is required"))
	}
	return nil
}

// Validate ensures the DeliveryInfo was created via a mode constructor.
func (d DeliveryInfo) Validate() error {
	return d.guard.Validate(ErrDeliveryInfoIsNotConstructed)
}

// Mode returns the active fulfilment mode.
func (d DeliveryInfo) Mode() DeliveryMode {
	return d.mode
}

// Address returns the destination or collection address. The second
// return value is false for the ShippingCompany mode, which carries no
// address.
func (d DeliveryInfo) Address() (Address, bool) {
	if d.mode == DeliveryDirect || d.mode == DeliveryClientCollection {
		return d.address, true
	}
	return Address{}, false
}

// ShippingCompany returns the carrier name. The second return value is
// false for the address-based modes.
func (d DeliveryInfo) ShippingCompany() (string, bool) {
	if d.mode == DeliveryShippingCompany {
		return d.shippingCompany, true
	}
	return "", false
}
