package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the top-level lifecycle state of a print order.
// It implements a strictly ordered state machine:
//
//	Submitted -> Designing -> DesignDone -> InPrepress -> ReadyForDelivery -> Delivering -> Completed
//
// with Cancelled as a terminal branch reachable only from Submitted.
// Every other transition target must be the immediate successor of the
// current status; skipping stages is rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Submitted is the initial status of a freshly created order.
	// The specification may still be edited and the order cancelled.
	Submitted

	// Designing indicates a designer is working on the order.
	Designing

	// DesignDone indicates the design has been approved and the order
	// is waiting to enter prepress.
	DesignDone

	// InPrepress indicates plate production is underway. The prepress
	// sub-processes may be updated individually while in this status.
	InPrepress

	// ReadyForDelivery indicates production is finished and a validated
	// delivery mode has been attached.
	ReadyForDelivery

	// Delivering indicates the order is on its way to the client.
	Delivering

	// Completed indicates the order was delivered. Terminal.
	Completed

	// Cancelled indicates the order was withdrawn before production
	// started. Terminal, reachable only from the cancellable window.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Submitted:        "Submitted",
		Designing:        "Designing",
		DesignDone:       "DesignDone",
		InPrepress:       "InPrepress",
		ReadyForDelivery: "ReadyForDelivery",
		Delivering:       "Delivering",
		Completed:        "Completed",
		Cancelled:        "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Submitted:        "Submitted",
		Designing:        "Designing",
		DesignDone:       "DesignDone",
		InPrepress:       "InPrepress",
		ReadyForDelivery: "ReadyForDelivery",
		Delivering:       "Delivering",
		Completed:        "Completed",
		Cancelled:        "Cancelled",
	}
}

// cancellableStatuses is the fixed window from which Cancelled is reachable.
// Kept as a single constant set so every call site shares the same boundary.
func cancellableStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Submitted: {},
	}
}

// Validate checks that the Status is one of the defined values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a status name back into a Status value.
// Returns an error for unrecognized names and for "Unknown".
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status name", s))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsCancellable reports whether Cancelled is reachable from this status.
func (s Status) IsCancellable() bool {
	_, ok := cancellableStatuses()[s]
	return ok
}

// Next returns the immediate successor in the production pipeline.
// The second return value is false for terminal statuses and Unknown.
func (s Status) Next() (Status, bool) {
	if s < Submitted || s >= Completed {
		return Unknown, false
	}
	return s + 1, true
}

// TransitionTo validates a transition from the receiver to target without
// performing it. The transition is legal iff target is the immediate
// successor of the current status, or target is Cancelled and the current
// status is inside the cancellable window.
//
// Returns:
//   - nil when the transition is legal
//   - *AlreadyTerminalError when the receiver is Completed or Cancelled
//   - *IllegalTransitionError for any other illegal target
func (s Status) TransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return NewAlreadyTerminalError(s)
	}

	if target == Cancelled {
		if !s.IsCancellable() {
			return NewIllegalTransitionError(s, target)
		}
		return nil
	}

	if next, ok := s.Next(); ok && next == target {
		return nil
	}

	return NewIllegalTransitionError(s, target)
}
