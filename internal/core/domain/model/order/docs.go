// Package order provides the domain model for print orders: the Order
// aggregate root, the Specification value object describing what is being
// printed, the Status state machine governing the production pipeline, the
// Stages sub-state tracked per lifecycle phase, and the DeliveryInfo tagged
// variant for the three fulfilment modes.
//
// Key business rules:
//   - Orders move through a fixed pipeline:
//     Submitted -> Designing -> DesignDone -> InPrepress -> ReadyForDelivery -> Delivering -> Completed
//   - Cancellation is only legal while the order is still in Submitted;
//     Completed and Cancelled are terminal
//   - Every successful transition rewrites the per-stage sub-state so the
//     top-level status and the nested stage flags never disagree; the status
//     is the single source of truth for completion
//   - A validated DeliveryInfo must accompany the transition into
//     ReadyForDelivery; the transition fails atomically without it
//   - The specification (and its cached cost estimate) can only change while
//     the order is still in Submitted
//
// The package follows the aggregate pattern: private fields, constructor
// validation, and RestoreOrder for reconstruction from persistence.
package order
