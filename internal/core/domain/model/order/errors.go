package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order lifecycle. Concrete error types below
// unwrap to these so callers can classify failures with errors.Is.
var (
	// ErrIllegalTransition indicates a requested status is not the legal
	// next state from the current one.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrAlreadyTerminal indicates an operation was attempted on an order
	// in Completed or Cancelled status.
	ErrAlreadyTerminal = errors.New("order is in a terminal status")

	// ErrInvalidDeliveryContext indicates the delivery payload attached to
	// a transition is missing or malformed.
	ErrInvalidDeliveryContext = errors.New("delivery context is invalid")

	// ErrInvalidSpecification indicates a specification failed validation
	// during cost estimation.
	ErrInvalidSpecification = errors.New("specification is invalid")

	// ErrSpecificationLocked indicates a specification edit was attempted
	// after design work began.
	ErrSpecificationLocked = errors.New("specification is locked once design work begins")

	// ErrPrepressNotActive indicates a prepress sub-process update was
	// attempted while the order is not in InPrepress.
	ErrPrepressNotActive = errors.New("prepress sub-processes can only change while the order is in prepress")
)

// IllegalTransitionError reports a rejected status transition, carrying
// both the current and the requested status.
type IllegalTransitionError struct {
	From Status
	To   Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for the
// given current and requested statuses.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// AlreadyTerminalError reports an operation attempted on a terminal order.
type AlreadyTerminalError struct {
	Status Status
}

// NewAlreadyTerminalError creates an AlreadyTerminalError for the given status.
func NewAlreadyTerminalError(status Status) *AlreadyTerminalError {
	return &AlreadyTerminalError{Status: status}
}

func (e *AlreadyTerminalError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadyTerminal, e.Status)
}

func (e *AlreadyTerminalError) Unwrap() error {
	return ErrAlreadyTerminal
}

// InvalidDeliveryContextError reports a missing or malformed delivery
// payload with field-level detail for the caller to render.
type InvalidDeliveryContextError struct {
	Mode  DeliveryMode
	Field string
	Cause error
}

// NewInvalidDeliveryContextError creates an InvalidDeliveryContextError
// identifying the offending field for the given mode.
func NewInvalidDeliveryContextError(mode DeliveryMode, field string) *InvalidDeliveryContextError {
	return &InvalidDeliveryContextError{Mode: mode, Field: field}
}

// NewInvalidDeliveryContextErrorWithCause creates an
// InvalidDeliveryContextError wrapping an underlying cause.
func NewInvalidDeliveryContextErrorWithCause(mode DeliveryMode, field string, cause error) *InvalidDeliveryContextError {
	return &InvalidDeliveryContextError{Mode: mode, Field: field, Cause: cause}
}

func (e *InvalidDeliveryContextError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (mode: %s, cause: %s)", ErrInvalidDeliveryContext, e.Field, e.Mode, e.Cause)
	}
	return fmt.Sprintf("%s: %s (mode: %s)", ErrInvalidDeliveryContext, e.Field, e.Mode)
}

func (e *InvalidDeliveryContextError) Unwrap() error {
	return ErrInvalidDeliveryContext
}

// InvalidSpecificationError reports a specification rejected by the price
// estimator, identifying the offending field.
type InvalidSpecificationError struct {
	Field string
	Cause error
}

// NewInvalidSpecificationError creates an InvalidSpecificationError for
// the given field with an underlying cause.
func NewInvalidSpecificationError(field string, cause error) *InvalidSpecificationError {
	return &InvalidSpecificationError{Field: field, Cause: cause}
}

func (e *InvalidSpecificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidSpecification, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidSpecification, e.Field)
}

func (e *InvalidSpecificationError) Unwrap() error {
	return ErrInvalidSpecification
}
