package services

import (
	"printshop/internal/core/domain/model/order"
)

// TotalStages is the number of canonical lifecycle stages tracked for
// progress display: Submission, Design, Prepress, Delivery.
const TotalStages = 4

// Canonical stage names in pipeline order.
const (
	StageSubmission = "Submission"
	StageDesign     = "Design"
	StagePrepress   = "Prepress"
	StageDelivery   = "Delivery"
)

// Per-stage display states.
const (
	StateCompleted  = "Completed"
	StateInProgress = "In Progress"
	StatePending    = "Pending"
)

// ViewerRole selects how much internal detail a progress view exposes.
// The role never changes completion results, only the level of detail.
type ViewerRole int

const (
	// RoleClient sees stage-level progress only.
	RoleClient ViewerRole = iota

	// RoleStaff additionally sees prepress sub-process detail.
	RoleStaff
)

// StageView is the projected state of one canonical stage.
// SubProcesses is populated only on the Prepress stage for staff viewers.
type StageView struct {
	Name         string
	State        string
	SubProcesses map[order.SubProcess]order.StageStatus
}

// Progress is the projected progress of an order: how many of the four
// canonical stages are complete, the percentage for progress bars, the
// index of the stage currently being worked on, and a label per stage.
type Progress struct {
	CompletedCount   int
	TotalStages      int
	Percent          float64
	CurrentStepIndex int
	Stages           []StageView
}

// ProgressProjector is the single component allowed to derive progress
// views from an order snapshot. It is a pure function of its input:
// calling it twice on the same snapshot yields identical output, and it
// never mutates the order.
//
// A stage counts as complete when the top-level status has advanced past
// it. For the Design and Prepress stages the nested stage flag is also
// accepted as a completion signal: records written before the status
// engine enforced the sync invariant carry only the flag. New writes keep
// both in agreement, so the fallback is a compatibility path, not a
// second source of truth.
type ProgressProjector struct{}

// NewProgressProjector creates a new ProgressProjector instance.
func NewProgressProjector() ProgressProjector {
	return ProgressProjector{}
}

// Project computes the progress view of the given order for a viewer role.
//
// The percentage is 100 * completed / total, plus a half-stage credit
// when the first incomplete stage is in progress. It is always in
// [0, 100], and CompletedCount never exceeds TotalStages.
func (p ProgressProjector) Project(o *order.Order, role ViewerRole) (Progress, error) {
	if err := o.Validate(); err != nil {
		return Progress{}, err
	}

	status := o.Status()
	stages := o.Stages()

	type stageState struct {
		name       string
		complete   bool
		inProgress bool
	}

	states := []stageState{
		{
			name:     StageSubmission,
			complete: true,
		},
		{
			name: StageDesign,
			complete: isPastStage(status, order.DesignDone) ||
				stages.Design() == order.StageCompleted,
			inProgress: status == order.Designing ||
				stages.Design() == order.StageInProgress,
		},
		{
			name: StagePrepress,
			complete: isPastStage(status, order.ReadyForDelivery) ||
				stages.Prepress() == order.StageCompleted,
			inProgress: status == order.InPrepress ||
				stages.Prepress() == order.StageInProgress,
		},
		{
			name: StageDelivery,
			complete: status == order.Completed ||
				stages.Delivery() == order.StageCompleted,
			inProgress: status == order.ReadyForDelivery ||
				status == order.Delivering ||
				stages.Delivery() == order.StageInProgress,
		},
	}

	completed := 0
	currentIndex := TotalStages - 1
	halfCredit := false
	foundIncomplete := false

	views := make([]StageView, 0, TotalStages)
	for i, st := range states {
		switch {
		case st.complete:
			completed++
		case !foundIncomplete:
			foundIncomplete = true
			currentIndex = i
			halfCredit = st.inProgress
		}

		view := StageView{Name: st.name, State: stateLabel(st.complete, st.inProgress)}
		if st.name == StagePrepress && role == RoleStaff {
			view.SubProcesses = stages.SubProcesses()
		}
		views = append(views, view)
	}

	percent := 100 * float64(completed) / TotalStages
	if halfCredit {
		percent += 100.0 / TotalStages / 2
	}

	return Progress{
		CompletedCount:   completed,
		TotalStages:      TotalStages,
		Percent:          percent,
		CurrentStepIndex: currentIndex,
		Stages:           views,
	}, nil
}

// isPastStage reports whether status has advanced past the pipeline
// position marked by boundary. Cancelled is outside the pipeline ordering
// and never counts as past anything.
func isPastStage(status, boundary order.Status) bool {
	return status >= boundary && status <= order.Completed
}

func stateLabel(complete, inProgress bool) string {
	switch {
	case complete:
		return StateCompleted
	case inProgress:
		return StateInProgress
	default:
		return StatePending
	}
}
