package order

import (
	"fmt"
	"time"

	"printshop/internal/pkg/errs"
)

// StageStatus is the completion state of a lifecycle stage or a prepress
// sub-process. The zero value is NotStarted, which is also the valid
// initial state.
type StageStatus int

const (
	// StageNotStarted means work on the stage has not begun.
	StageNotStarted StageStatus = iota

	// StageInProgress means the stage is being worked on.
	StageInProgress

	// StageCompleted means the stage is finished.
	StageCompleted
)

func getStageStatusStrings() map[StageStatus]string {
	return map[StageStatus]string{
		StageNotStarted: "NotStarted",
		StageInProgress: "InProgress",
		StageCompleted:  "Completed",
	}
}

// Validate checks that the StageStatus is one of the defined values.
func (s StageStatus) Validate() error {
	if _, ok := getStageStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage status is invalid",
			fmt.Errorf("%d is not a valid stage status", s))
	}
	return nil
}

// String returns the stage status name.
func (s StageStatus) String() string {
	if str, ok := getStageStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStageStatus converts a stage status name into a StageStatus value.
func ParseStageStatus(s string) (StageStatus, error) {
	for status, name := range getStageStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StageNotStarted, errs.NewValueIsInvalidErrorWithCause("stage status is invalid",
		fmt.Errorf("%q is not a valid stage status name", s))
}

// SubProcess names a unit of work inside the prepress stage. The set is
// closed; no completion order is enforced between sub-processes.
type SubProcess string

const (
	SubProcessPositioning  SubProcess = "Positioning"
	SubProcessLaserImaging SubProcess = "LaserImaging"
	SubProcessMainExposure SubProcess = "MainExposure"
	SubProcessBackExposure SubProcess = "BackExposure"
	SubProcessWashout      SubProcess = "Washout"
	SubProcessDrying       SubProcess = "Drying"
	SubProcessFinishing    SubProcess = "Finishing"
)

// AllSubProcesses returns the closed set of prepress sub-processes in
// their conventional production order. The order is informational only.
func AllSubProcesses() []SubProcess {
	return []SubProcess{
		SubProcessPositioning,
		SubProcessLaserImaging,
		SubProcessMainExposure,
		SubProcessBackExposure,
		SubProcessWashout,
		SubProcessDrying,
		SubProcessFinishing,
	}
}

// Validate checks that the sub-process is one of the closed set.
func (p SubProcess) Validate() error {
	for _, known := range AllSubProcesses() {
		if p == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("subProcess",
		fmt.Errorf("%q is not a prepress sub-process", string(p)))
}

// Stages holds the per-stage sub-state of an order: the design stage
// status, the prepress stage status with its sub-process map, and the
// delivery stage status with its completion date and delivery info.
//
// Stages is only ever written by the Order aggregate: every successful
// status transition rewrites it wholesale so it never disagrees with the
// top-level status. Readers must treat the top-level status as
// authoritative and use these flags for display detail only.
type Stages struct {
	design              StageStatus
	prepress            StageStatus
	subProcesses        map[SubProcess]StageStatus
	delivery            StageStatus
	deliveryCompletedAt *time.Time
	deliveryInfo        *DeliveryInfo
}

// NewStages creates the initial sub-state for a freshly submitted order:
// every stage not started, every sub-process not started.
func NewStages() Stages {
	subProcesses := make(map[SubProcess]StageStatus, len(AllSubProcesses()))
	for _, p := range AllSubProcesses() {
		subProcesses[p] = StageNotStarted
	}
	return Stages{
		subProcesses: subProcesses,
	}
}

// RestoreStages reconstructs Stages from persistence. Unknown sub-process
// names and invalid statuses are rejected; sub-processes missing from the
// stored map are restored as NotStarted.
func RestoreStages(
	design StageStatus,
	prepress StageStatus,
	subProcesses map[SubProcess]StageStatus,
	delivery StageStatus,
	deliveryCompletedAt *time.Time,
	deliveryInfo *DeliveryInfo,
) (Stages, error) {
	if err := design.Validate(); err != nil {
		return Stages{}, err
	}
	if err := prepress.Validate(); err != nil {
		return Stages{}, err
	}
	if err := delivery.Validate(); err != nil {
		return Stages{}, err
	}

	restored := NewStages()
	restored.design = design
	restored.prepress = prepress
	restored.delivery = delivery
	for p, s := range subProcesses {
		if err := p.Validate(); err != nil {
			return Stages{}, err
		}
		if err := s.Validate(); err != nil {
			return Stages{}, err
		}
		restored.subProcesses[p] = s
	}

	if deliveryCompletedAt != nil {
		t := *deliveryCompletedAt
		restored.deliveryCompletedAt = &t
	}
	if deliveryInfo != nil {
		if err := deliveryInfo.Validate(); err != nil {
			return Stages{}, err
		}
		info := *deliveryInfo
		restored.deliveryInfo = &info
	}

	return restored, nil
}

// Design returns the design stage status.
func (s Stages) Design() StageStatus { return s.design }

// Prepress returns the prepress stage status.
func (s Stages) Prepress() StageStatus { return s.prepress }

// Delivery returns the delivery stage status.
func (s Stages) Delivery() StageStatus { return s.delivery }

// SubProcesses returns a copy of the prepress sub-process map.
func (s Stages) SubProcesses() map[SubProcess]StageStatus {
	copied := make(map[SubProcess]StageStatus, len(s.subProcesses))
	for p, status := range s.subProcesses {
		copied[p] = status
	}
	return copied
}

// SubProcess returns the status of a single prepress sub-process.
func (s Stages) SubProcess(p SubProcess) (StageStatus, bool) {
	status, ok := s.subProcesses[p]
	return status, ok
}

// DeliveryCompletedAt returns the delivery completion time, or nil when
// the order has not been delivered.
func (s Stages) DeliveryCompletedAt() *time.Time {
	if s.deliveryCompletedAt == nil {
		return nil
	}
	t := *s.deliveryCompletedAt
	return &t
}

// DeliveryInfo returns the attached delivery info, or nil before the
// order reaches ReadyForDelivery.
func (s Stages) DeliveryInfo() *DeliveryInfo {
	if s.deliveryInfo == nil {
		return nil
	}
	info := *s.deliveryInfo
	return &info
}

// syncWithStatus rewrites every stage flag to agree with the top-level
// status. Cancelled freezes the stage flags at their last values.
func (s *Stages) syncWithStatus(status Status, now time.Time) {
	if status == Cancelled {
		return
	}

	switch {
	case status >= DesignDone && status <= Completed:
		s.design = StageCompleted
	case status == Designing:
		s.design = StageInProgress
	default:
		s.design = StageNotStarted
	}

	switch {
	case status >= ReadyForDelivery && status <= Completed:
		s.prepress = StageCompleted
		for p := range s.subProcesses {
			s.subProcesses[p] = StageCompleted
		}
	case status == InPrepress:
		s.prepress = StageInProgress
	default:
		s.prepress = StageNotStarted
	}

	switch {
	case status == Completed:
		s.delivery = StageCompleted
		if s.deliveryCompletedAt == nil {
			t := now
			s.deliveryCompletedAt = &t
		}
	case status == ReadyForDelivery || status == Delivering:
		s.delivery = StageInProgress
	default:
		s.delivery = StageNotStarted
	}
}

// setSubProcess records a single sub-process status change and keeps the
// prepress stage flag consistent: any progress marks the stage in
// progress, and a full set of completed sub-processes does not complete
// the stage by itself - only the status transition out of InPrepress does.
func (s *Stages) setSubProcess(p SubProcess, status StageStatus) {
	s.subProcesses[p] = status
	if status != StageNotStarted && s.prepress == StageNotStarted {
		s.prepress = StageInProgress
	}
}

// attachDeliveryInfo stores the validated delivery info when the order
// enters ReadyForDelivery.
func (s *Stages) attachDeliveryInfo(info DeliveryInfo) {
	s.deliveryInfo = &info
}
