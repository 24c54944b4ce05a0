package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allRequestStatuses = []RequestStatus{
	RequestRequested,
	RequestApproved,
	RequestScheduled,
	RequestInProgress,
	RequestCompleted,
	RequestCancelled,
}

func TestRequestStatusTransitions(t *testing.T) {
	t.Run("forward progression", func(t *testing.T) {
		assert.True(t, RequestRequested.CanTransitionTo(RequestApproved))
		assert.True(t, RequestApproved.CanTransitionTo(RequestScheduled))
		assert.True(t, RequestScheduled.CanTransitionTo(RequestInProgress))
		assert.True(t, RequestInProgress.CanTransitionTo(RequestCompleted))
	})

	t.Run("no skipping ahead", func(t *testing.T) {
		assert.False(t, RequestRequested.CanTransitionTo(RequestScheduled))
		assert.False(t, RequestRequested.CanTransitionTo(RequestCompleted))
		assert.False(t, RequestApproved.CanTransitionTo(RequestInProgress))
	})

	t.Run("no moving backwards", func(t *testing.T) {
		assert.False(t, RequestApproved.CanTransitionTo(RequestRequested))
		assert.False(t, RequestScheduled.CanTransitionTo(RequestApproved))
	})

	t.Run("cancel allowed from every non-terminal status", func(t *testing.T) {
		for _, status := range allRequestStatuses {
			if status.IsTerminal() {
				continue
			}
			assert.True(t, status.CanTransitionTo(RequestCancelled), "from %s", status)
		}
	})

	t.Run("terminal statuses admit nothing", func(t *testing.T) {
		for _, from := range []RequestStatus{RequestCompleted, RequestCancelled} {
			for _, to := range allRequestStatuses {
				assert.False(t, from.CanTransitionTo(to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("re-entering the current status is rejected", func(t *testing.T) {
		for _, status := range allRequestStatuses {
			assert.False(t, status.CanTransitionTo(status), "%s -> %s", status, status)
		}
	})
}

func TestPlanStatusTransitions(t *testing.T) {
	t.Run("confirm only from scheduled", func(t *testing.T) {
		assert.True(t, PlanScheduled.CanTransitionTo(PlanConfirmed))
		assert.False(t, PlanInProgress.CanTransitionTo(PlanConfirmed))
	})

	t.Run("start from scheduled or confirmed", func(t *testing.T) {
		assert.True(t, PlanScheduled.CanTransitionTo(PlanInProgress))
		assert.True(t, PlanConfirmed.CanTransitionTo(PlanInProgress))
	})

	t.Run("complete only from in progress", func(t *testing.T) {
		assert.True(t, PlanInProgress.CanTransitionTo(PlanCompleted))
		assert.False(t, PlanScheduled.CanTransitionTo(PlanCompleted))
		assert.False(t, PlanConfirmed.CanTransitionTo(PlanCompleted))
	})

	t.Run("cancel from every non-terminal status", func(t *testing.T) {
		for _, status := range []PlanStatus{PlanScheduled, PlanConfirmed, PlanInProgress} {
			assert.True(t, status.CanTransitionTo(PlanCancelled), "from %s", status)
		}
	})

	t.Run("terminal statuses admit nothing", func(t *testing.T) {
		for _, from := range []PlanStatus{PlanCompleted, PlanCancelled} {
			for _, to := range []PlanStatus{PlanScheduled, PlanConfirmed, PlanInProgress, PlanCompleted, PlanCancelled} {
				assert.False(t, from.CanTransitionTo(to), "%s -> %s", from, to)
			}
		}
	})
}

func TestValidators(t *testing.T) {
	t.Run("request statuses", func(t *testing.T) {
		for _, status := range allRequestStatuses {
			assert.True(t, ValidRequestStatus(status), "%s", status)
		}
		assert.False(t, ValidRequestStatus("finished"))
		assert.False(t, ValidRequestStatus(""))
	})

	t.Run("priorities", func(t *testing.T) {
		for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent} {
			assert.True(t, ValidPriority(p), "%s", p)
		}
		assert.False(t, ValidPriority("asap"))
	})
}
