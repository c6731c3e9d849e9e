package order

import (
	"errors"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// OrderType classifies how the order relates to previous work.
type OrderType int

const (
	// OrderTypeUnknown represents an invalid or undefined order type.
	OrderTypeUnknown OrderType = iota

	// OrderTypeNew is a brand new design.
	OrderTypeNew

	// OrderTypeExisting reprints an existing design unchanged.
	OrderTypeExisting

	// OrderTypeExistingWithChanges reprints an existing design with edits.
	OrderTypeExistingWithChanges
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		OrderTypeUnknown:             "Unknown",
		OrderTypeNew:                 "New",
		OrderTypeExisting:            "Existing",
		OrderTypeExistingWithChanges: "ExistingWithChanges",
	}
}

// Validate checks that the order type is one of the defined values.
func (t OrderType) Validate() error {
	if t == OrderTypeUnknown {
		return errs.NewValueIsRequiredError("orderType")
	}
	if _, ok := getOrderTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the order type name.
func (t OrderType) String() string {
	if str, ok := getOrderTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// ParseOrderType converts an order type name into an OrderType value.
func ParseOrderType(s string) (OrderType, error) {
	for t, name := range getOrderTypeStrings() {
		if t != OrderTypeUnknown && name == s {
			return t, nil
		}
	}
	return OrderTypeUnknown, errs.NewValueIsInvalidErrorWithCause("orderType",
		fmt.Errorf("%q is not a valid order type", s))
}

// Priority is the production priority of an order.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		PriorityLow:     "Low",
		PriorityMedium:  "Medium",
		PriorityHigh:    "High",
		PriorityUrgent:  "Urgent",
	}
}

// Validate checks that the priority is one of the defined values.
func (p Priority) Validate() error {
	if p == PriorityUnknown {
		return errs.NewValueIsRequiredError("priority")
	}
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the priority name.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// ParsePriority converts a priority name into a Priority value.
func ParsePriority(s string) (Priority, error) {
	for p, name := range getPriorityStrings() {
		if p != PriorityUnknown && name == s {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a valid priority", s))
}

// TransitionContext carries the transition-specific payload for
// ApplyTransition: the cancellation reason when the target is Cancelled
// (may be empty, recorded immutably), and the dispatcher-validated
// delivery info when the target is ReadyForDelivery.
type TransitionContext struct {
	CancellationReason string
	Delivery           *DeliveryInfo
}

// Order is the aggregate root for a print order. It owns the only
// authoritative copy of the lifecycle state: the top-level Status and the
// per-stage sub-state in Stages, kept in sync atomically on every
// transition. No other component may re-derive stage completion.
//
// Invariants:
//   - Must have a valid unique identifier and a constructed Specification
//   - Status transitions follow the pipeline rules in Status.TransitionTo
//   - A status past a stage implies that stage's sub-state is Completed
//   - The specification and cached estimate only change while Submitted
//   - The cancellation reason is set once, on the transition into
//     Cancelled, and never changes afterwards
type Order struct {
	id                 kernel.UUID
	spec               Specification
	orderType          OrderType
	priority           Priority
	status             Status
	stages             Stages
	designerID         *kernel.UUID
	cancellationReason *string
	estimatedCost      float64
	createdAt          time.Time
	updatedAt          time.Time

	events []StatusChanged

	isConstructed bool
}

// NewOrder creates a new Order in Submitted status from a validated
// Specification. The estimated cost must be the estimator's output for
// that same specification; the aggregate caches it, it never computes it.
func NewOrder(
	id kernel.UUID,
	spec Specification,
	orderType OrderType,
	priority Priority,
	estimatedCost float64,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Submitted,
		stages:        NewStages(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setSpecification(spec, estimatedCost),
		o.setOrderType(orderType),
		o.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. All fields are
// validated the same way NewOrder validates its inputs; the status and
// stages are restored as stored, historical disagreements included - the
// progress projector handles those explicitly.
func RestoreOrder(
	id kernel.UUID,
	spec Specification,
	orderType OrderType,
	priority Priority,
	status Status,
	stages Stages,
	designerID *kernel.UUID,
	cancellationReason *string,
	estimatedCost float64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		stages:        stages,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setSpecification(spec, estimatedCost),
		o.setOrderType(orderType),
		o.setPriority(priority),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	if designerID != nil {
		if err := designerID.Validate(); err != nil {
			return nil, err
		}
		dID := *designerID
		o.designerID = &dID
	}
	if cancellationReason != nil {
		reason := *cancellationReason
		o.cancellationReason = &reason
	}

	return o, nil
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Specification returns the current print specification.
func (o *Order) Specification() Specification { return o.spec }

// OrderType returns the order classification.
func (o *Order) OrderType() OrderType { return o.orderType }

// Priority returns the production priority.
func (o *Order) Priority() Priority { return o.priority }

// Status returns the current top-level status.
func (o *Order) Status() Status { return o.status }

// Stages returns a snapshot of the per-stage sub-state.
func (o *Order) Stages() Stages { return o.stages }

// Designer returns the assigned designer's ID, or nil when unassigned.
func (o *Order) Designer() *kernel.UUID {
	if o.designerID == nil {
		return nil
	}
	id := *o.designerID
	return &id
}

// CancellationReason returns the recorded reason and true once the order
// has been cancelled.
func (o *Order) CancellationReason() (string, bool) {
	if o.cancellationReason == nil {
		return "", false
	}
	return *o.cancellationReason, true
}

// EstimatedCost returns the cached estimator output for the current
// specification. Zero means "no estimate yet", not free.
func (o *Order) EstimatedCost() float64 { return o.estimatedCost }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Events returns the status-change events recorded since the aggregate
// was loaded, for the caller to relay after a successful commit.
func (o *Order) Events() []StatusChanged {
	events := make([]StatusChanged, len(o.events))
	copy(events, o.events)
	return events
}

// ApplyTransition moves the order to target, enforcing the pipeline
// rules. Validation fully precedes mutation: on any failure the order is
// unchanged.
//
// On success the per-stage sub-state is rewritten to agree with the new
// status, the delivery info from ctx is attached when entering
// ReadyForDelivery, the cancellation reason from ctx is recorded when
// entering Cancelled, and a StatusChanged event is appended.
func (o *Order) ApplyTransition(target Status, ctx TransitionContext) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.status.TransitionTo(target); err != nil {
		return err
	}

	if target == ReadyForDelivery {
		if ctx.Delivery == nil {
			return NewInvalidDeliveryContextError(DeliveryModeUnknown, "delivery")
		}
		if err := ctx.Delivery.Validate(); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	from := o.status
	o.status = target

	if target == ReadyForDelivery {
		o.stages.attachDeliveryInfo(*ctx.Delivery)
	}
	if target == Cancelled {
		reason := ctx.CancellationReason
		o.cancellationReason = &reason
	}

	o.stages.syncWithStatus(target, now)
	o.updatedAt = now
	o.events = append(o.events, StatusChanged{OrderID: o.id, From: from, To: target})

	return nil
}

// IsCancellable reports whether the order can still be cancelled.
func (o *Order) IsCancellable() bool {
	return o.status.IsCancellable()
}

// IsClaimable reports whether a claim may be filed against the order.
// Claims are accepted against any active order.
func (o *Order) IsClaimable() bool {
	return !o.status.IsTerminal()
}

// UpdateSpecification replaces the specification and its freshly
// recomputed estimate. Only legal while the order is still Submitted;
// once design work begins the specification is immutable.
func (o *Order) UpdateSpecification(spec Specification, estimatedCost float64) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != Submitted {
		return ErrSpecificationLocked
	}
	if err := o.setSpecification(spec, estimatedCost); err != nil {
		return err
	}

	o.updatedAt = time.Now().UTC()
	return nil
}

// AssignDesigner attaches a designer reference to an active order.
// Reassignment is allowed.
func (o *Order) AssignDesigner(designerID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := designerID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return NewAlreadyTerminalError(o.status)
	}

	o.designerID = &designerID
	o.updatedAt = time.Now().UTC()
	return nil
}

// SetPrepressSubProcess records progress on a single prepress
// sub-process. Only legal while the order is InPrepress; the stage flag
// itself is completed only by the transition into ReadyForDelivery.
func (o *Order) SetPrepressSubProcess(p SubProcess, status StageStatus) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := errors.Join(p.Validate(), status.Validate()); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return NewAlreadyTerminalError(o.status)
	}
	if o.status != InPrepress {
		return ErrPrepressNotActive
	}

	o.stages.setSubProcess(p, status)
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSpecification(spec Specification, estimatedCost float64) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if estimatedCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedCost",
			fmt.Errorf("%.2f is negative", estimatedCost))
	}
	o.spec = spec
	o.estimatedCost = estimatedCost
	return nil
}

func (o *Order) setOrderType(t OrderType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.orderType = t
	return nil
}

func (o *Order) setPriority(p Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.priority = p
	return nil
}
