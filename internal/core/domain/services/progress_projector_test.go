package services_test

import (
	"testing"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	spec := newSpec(t, 10, 20, 1, 1, order.Thickness170, []order.Color{order.ColorBlack})
	o, err := order.NewOrder(kernel.NewUUID(), spec, order.OrderTypeNew, order.PriorityMedium, 170.00)
	require.NoError(t, err)
	return o
}

func advanceOrderTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()

	for o.Status() != target {
		next, ok := o.Status().Next()
		require.True(t, ok)

		ctx := order.TransitionContext{}
		if next == order.ReadyForDelivery {
			delivery, err := order.NewShippingCompanyDelivery("Speedy Freight")
			require.NoError(t, err)
			ctx.Delivery = &delivery
		}

		require.NoError(t, o.ApplyTransition(next, ctx))
	}
}

func TestProgressProjector_Project(t *testing.T) {
	projector := services.NewProgressProjector()

	t.Run("should show submission complete for a fresh order", func(t *testing.T) {
		o := newTestOrder(t)

		progress, err := projector.Project(o, services.RoleClient)

		require.NoError(t, err)
		assert.Equal(t, 1, progress.CompletedCount)
		assert.Equal(t, services.TotalStages, progress.TotalStages)
		assert.InDelta(t, 25.0, progress.Percent, 0.001)
		assert.Equal(t, 1, progress.CurrentStepIndex)

		require.Len(t, progress.Stages, services.TotalStages)
		assert.Equal(t, services.StateCompleted, progress.Stages[0].State)
		assert.Equal(t, services.StatePending, progress.Stages[1].State)
		assert.Equal(t, services.StatePending, progress.Stages[2].State)
		assert.Equal(t, services.StatePending, progress.Stages[3].State)
	})

	t.Run("should grant half credit while a stage is in progress", func(t *testing.T) {
		o := newTestOrder(t)
		advanceOrderTo(t, o, order.Designing)

		progress, err := projector.Project(o, services.RoleClient)

		require.NoError(t, err)
		assert.Equal(t, 1, progress.CompletedCount)
		assert.InDelta(t, 37.5, progress.Percent, 0.001)
		assert.Equal(t, 1, progress.CurrentStepIndex)
		assert.Equal(t, services.StateInProgress, progress.Stages[1].State)
	})

	t.Run("should project prepress in progress at 62.5 percent", func(t *testing.T) {
		o := newTestOrder(t)
		advanceOrderTo(t, o, order.InPrepress)

		progress, err := projector.Project(o, services.RoleClient)

		require.NoError(t, err)
		assert.Equal(t, 2, progress.CompletedCount)
		assert.InDelta(t, 62.5, progress.Percent, 0.001)
		assert.Equal(t, 2, progress.CurrentStepIndex)
		assert.Equal(t, services.StateCompleted, progress.Stages[1].State)
		assert.Equal(t, services.StateInProgress, progress.Stages[2].State)
	})

	t.Run("should reach exactly one hundred percent when completed", func(t *testing.T) {
		o := newTestOrder(t)
		advanceOrderTo(t, o, order.Completed)

		progress, err := projector.Project(o, services.RoleClient)

		require.NoError(t, err)
		assert.Equal(t, services.TotalStages, progress.CompletedCount)
		assert.InDelta(t, 100.0, progress.Percent, 0.001)
		assert.Equal(t, services.TotalStages-1, progress.CurrentStepIndex)

		for _, stage := range progress.Stages {
			assert.Equal(t, services.StateCompleted, stage.State, stage.Name)
		}
	})

	t.Run("should be idempotent on the same snapshot", func(t *testing.T) {
		o := newTestOrder(t)
		advanceOrderTo(t, o, order.InPrepress)

		first, err := projector.Project(o, services.RoleStaff)
		require.NoError(t, err)
		second, err := projector.Project(o, services.RoleStaff)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should not advance progress for a cancelled order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ApplyTransition(order.Cancelled, order.TransitionContext{}))

		progress, err := projector.Project(o, services.RoleClient)

		require.NoError(t, err)
		assert.Equal(t, 1, progress.CompletedCount)
		assert.InDelta(t, 25.0, progress.Percent, 0.001)
		assert.Equal(t, services.StatePending, progress.Stages[1].State)
	})

	t.Run("should accept a stored stage flag as completion signal", func(t *testing.T) {
		// Records written before stages were synced with the status may
		// carry only the nested flag.
		o := newTestOrder(t)
		stages, err := order.RestoreStages(
			order.StageCompleted,
			order.StageNotStarted,
			nil,
			order.StageNotStarted,
			nil,
			nil,
		)
		require.NoError(t, err)

		restored, err := order.RestoreOrder(
			o.ID(),
			o.Specification(),
			o.OrderType(),
			o.Priority(),
			order.Designing,
			stages,
			nil,
			nil,
			o.EstimatedCost(),
			time.Now().UTC(),
			time.Now().UTC(),
		)
		require.NoError(t, err)

		progress, err := projector.Project(restored, services.RoleClient)

		require.NoError(t, err)
		assert.Equal(t, 2, progress.CompletedCount)
		assert.Equal(t, services.StateCompleted, progress.Stages[1].State)
		assert.InDelta(t, 50.0, progress.Percent, 0.001)
	})

	t.Run("should expose sub-processes to staff only", func(t *testing.T) {
		o := newTestOrder(t)
		advanceOrderTo(t, o, order.InPrepress)
		require.NoError(t, o.SetPrepressSubProcess(order.SubProcessWashout, order.StageInProgress))

		staffView, err := projector.Project(o, services.RoleStaff)
		require.NoError(t, err)
		clientView, err := projector.Project(o, services.RoleClient)
		require.NoError(t, err)

		require.NotNil(t, staffView.Stages[2].SubProcesses)
		assert.Equal(t, order.StageInProgress, staffView.Stages[2].SubProcesses[order.SubProcessWashout])

		for _, stage := range clientView.Stages {
			assert.Nil(t, stage.SubProcesses, stage.Name)
		}
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		var o *order.Order

		_, err := projector.Project(o, services.RoleClient)

		require.Error(t, err)
	})
}
