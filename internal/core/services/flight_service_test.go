package services

import (
	"context"
	"testing"

	"sharebrasil-ops/internal/adapters/persistence/models"
	"sharebrasil-ops/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type flightEnv struct {
	svc      *FlightService
	requests *fakeRequestRepo
	plans    *fakePlanRepo
	inbox    *fakeNotificationRepo
}

func newFlightEnv() *flightEnv {
	requests := newFakeRequestRepo()
	plans := newFakePlanRepo()
	inbox := newFakeNotificationRepo()
	svc := NewFlightService(requests, plans, NewNotificationService(inbox), zap.NewNop())
	return &flightEnv{svc: svc, requests: requests, plans: plans, inbox: inbox}
}

func (e *flightEnv) seedRequest(t *testing.T, status domain.RequestStatus) *models.FlightRequest {
	t.Helper()
	request := &models.FlightRequest{
		RequesterID:          7,
		RequesterName:        "Marina Souza",
		AircraftRegistration: "PR-SBR",
		FlightDate:           "2026-09-15",
		Origin:               "SBAT",
		Destination:          "SBCY",
		Passengers:           3,
		Status:               status,
	}
	require.NoError(t, e.requests.Create(context.Background(), request))
	return request
}

func (e *flightEnv) seedPlan(t *testing.T, requestID uint, status domain.PlanStatus) *models.FlightPlan {
	t.Helper()
	plan := &models.FlightPlan{
		FlightRequestID: requestID,
		FlightDate:      "2026-09-15",
		Origin:          "SBAT",
		Destination:     "SBCY",
		Status:          status,
	}
	require.NoError(t, e.plans.Create(context.Background(), plan))
	return plan
}

func validSubmitInput() *SubmitInput {
	return &SubmitInput{
		AircraftRegistration: "PR-SBR",
		FlightDate:           "2026-09-15",
		DepartureTime:        "08:30",
		Origin:               "SBAT",
		Destination:          "SBCY",
		Passengers:           3,
	}
}

func TestFlightServiceSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates request in requested status", func(t *testing.T) {
		env := newFlightEnv()

		request, err := env.svc.Submit(ctx, 7, "Marina Souza", validSubmitInput())
		require.NoError(t, err)
		assert.Equal(t, domain.RequestRequested, request.Status)
		assert.Equal(t, uint(7), request.RequesterID)
		assert.Equal(t, "Marina Souza", request.RequesterName)
		assert.Equal(t, domain.PriorityMedium, request.Priority)
	})

	t.Run("notifies coordinator role", func(t *testing.T) {
		env := newFlightEnv()

		_, err := env.svc.Submit(ctx, 7, "Marina Souza", validSubmitInput())
		require.NoError(t, err)

		created := env.inbox.ofType(domain.NotifyNewRequest)
		require.Len(t, created, 1)
		assert.Equal(t, domain.RoleCoordinator, created[0].RecipientRole)
		assert.Nil(t, created[0].RecipientID)
	})

	t.Run("rejects missing route fields", func(t *testing.T) {
		env := newFlightEnv()

		input := validSubmitInput()
		input.Destination = ""
		_, err := env.svc.Submit(ctx, 7, "Marina Souza", input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects non-positive passenger count", func(t *testing.T) {
		env := newFlightEnv()

		input := validSubmitInput()
		input.Passengers = 0
		_, err := env.svc.Submit(ctx, 7, "Marina Souza", input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("requires an authenticated actor", func(t *testing.T) {
		env := newFlightEnv()

		_, err := env.svc.Submit(ctx, 0, "", validSubmitInput())
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		env := newFlightEnv()
		env.requests.failNext = errStoreDown

		_, err := env.svc.Submit(ctx, 7, "Marina Souza", validSubmitInput())
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})

	t.Run("notification failure does not fail the submit", func(t *testing.T) {
		env := newFlightEnv()
		env.inbox.failNext = errStoreDown

		request, err := env.svc.Submit(ctx, 7, "Marina Souza", validSubmitInput())
		require.NoError(t, err)
		assert.Equal(t, domain.RequestRequested, request.Status)
		assert.Empty(t, env.inbox.notifications)
	})
}

func TestFlightServiceApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds only from requested", func(t *testing.T) {
		for _, status := range []domain.RequestStatus{
			domain.RequestRequested,
			domain.RequestApproved,
			domain.RequestScheduled,
			domain.RequestInProgress,
			domain.RequestCompleted,
			domain.RequestCancelled,
		} {
			t.Run(string(status), func(t *testing.T) {
				env := newFlightEnv()
				request := env.seedRequest(t, status)

				updated, err := env.svc.Approve(ctx, 1, request.ID)
				if status == domain.RequestRequested {
					require.NoError(t, err)
					assert.Equal(t, domain.RequestApproved, updated.Status)
				} else {
					assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				}
			})
		}
	})

	t.Run("emits no notification", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestRequested)

		_, err := env.svc.Approve(ctx, 1, request.ID)
		require.NoError(t, err)
		assert.Empty(t, env.inbox.notifications)
	})

	t.Run("unknown request yields not found", func(t *testing.T) {
		env := newFlightEnv()

		_, err := env.svc.Approve(ctx, 1, 99)
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})
}

func TestFlightServiceSchedule(t *testing.T) {
	ctx := context.Background()

	validInput := func() *ScheduleInput {
		return &ScheduleInput{FlightDate: "2026-09-15", DepartureTime: "08:30"}
	}

	t.Run("creates exactly one plan bound to the request", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestApproved)

		plan, err := env.svc.Schedule(ctx, 1, request.ID, validInput())
		require.NoError(t, err)
		assert.Equal(t, request.ID, plan.FlightRequestID)
		assert.Equal(t, domain.PlanScheduled, plan.Status)
		assert.Len(t, env.plans.plans, 1)

		stored, err := env.requests.GetByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RequestScheduled, stored.Status)
	})

	t.Run("inherits route from the request", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestApproved)

		plan, err := env.svc.Schedule(ctx, 1, request.ID, validInput())
		require.NoError(t, err)
		assert.Equal(t, "SBAT", plan.Origin)
		assert.Equal(t, "SBCY", plan.Destination)
	})

	t.Run("notifies the requester", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestApproved)

		_, err := env.svc.Schedule(ctx, 1, request.ID, validInput())
		require.NoError(t, err)

		created := env.inbox.ofType(domain.NotifyFlightScheduled)
		require.Len(t, created, 1)
		assert.Equal(t, domain.RoleRequester, created[0].RecipientRole)
		require.NotNil(t, created[0].RecipientID)
		assert.Equal(t, request.RequesterID, *created[0].RecipientID)
	})

	t.Run("rejects requests that are not approved", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestRequested)

		_, err := env.svc.Schedule(ctx, 1, request.ID, validInput())
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Empty(t, env.plans.plans)
	})

	t.Run("rejects a route mismatch", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestApproved)

		input := validInput()
		input.Origin = "SBGR"
		_, err := env.svc.Schedule(ctx, 1, request.ID, input)
		assert.ErrorIs(t, err, domain.ErrInvalidPlan)
	})

	t.Run("rejects a missing flight date", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestApproved)

		_, err := env.svc.Schedule(ctx, 1, request.ID, &ScheduleInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidPlan)
	})
}

func TestFlightServicePlanTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("confirm requires a scheduled plan", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestScheduled)
		plan := env.seedPlan(t, request.ID, domain.PlanScheduled)

		updated, err := env.svc.Confirm(ctx, 1, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PlanConfirmed, updated.Status)
		assert.Empty(t, env.inbox.notifications)
	})

	t.Run("start moves both plan and request to in progress", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestScheduled)
		plan := env.seedPlan(t, request.ID, domain.PlanConfirmed)

		updated, err := env.svc.Start(ctx, 2, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PlanInProgress, updated.Status)

		stored, err := env.requests.GetByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RequestInProgress, stored.Status)
		assert.Empty(t, env.inbox.notifications)
	})

	t.Run("complete finishes the flight and notifies the requester", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestInProgress)
		plan := env.seedPlan(t, request.ID, domain.PlanInProgress)

		updated, err := env.svc.Complete(ctx, 2, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PlanCompleted, updated.Status)

		stored, err := env.requests.GetByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RequestCompleted, stored.Status)

		created := env.inbox.ofType(domain.NotifyFlightCompleted)
		require.Len(t, created, 1)
		require.NotNil(t, created[0].RecipientID)
		assert.Equal(t, request.RequesterID, *created[0].RecipientID)
	})

	t.Run("complete rejects a plan that never started", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestScheduled)
		plan := env.seedPlan(t, request.ID, domain.PlanScheduled)

		_, err := env.svc.Complete(ctx, 2, plan.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("unknown plan yields not found", func(t *testing.T) {
		env := newFlightEnv()

		_, err := env.svc.Start(ctx, 2, 42)
		assert.ErrorIs(t, err, domain.ErrPlanNotFound)
	})
}

func TestFlightServiceCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("allowed from every non-terminal status", func(t *testing.T) {
		for _, status := range []domain.RequestStatus{
			domain.RequestRequested,
			domain.RequestApproved,
			domain.RequestScheduled,
			domain.RequestInProgress,
		} {
			t.Run(string(status), func(t *testing.T) {
				env := newFlightEnv()
				request := env.seedRequest(t, status)

				updated, err := env.svc.Cancel(ctx, 1, request.ID)
				require.NoError(t, err)
				assert.Equal(t, domain.RequestCancelled, updated.Status)
			})
		}
	})

	t.Run("rejected from terminal statuses", func(t *testing.T) {
		for _, status := range []domain.RequestStatus{
			domain.RequestCompleted,
			domain.RequestCancelled,
		} {
			t.Run(string(status), func(t *testing.T) {
				env := newFlightEnv()
				request := env.seedRequest(t, status)

				_, err := env.svc.Cancel(ctx, 1, request.ID)
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			})
		}
	})

	t.Run("second cancel is rejected", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestApproved)

		_, err := env.svc.Cancel(ctx, 1, request.ID)
		require.NoError(t, err)

		_, err = env.svc.Cancel(ctx, 1, request.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("cancelling a scheduled request also cancels its plan", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestScheduled)
		plan := env.seedPlan(t, request.ID, domain.PlanScheduled)

		_, err := env.svc.Cancel(ctx, 1, request.ID)
		require.NoError(t, err)

		stored, err := env.plans.GetByID(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PlanCancelled, stored.Status)
	})

	t.Run("notifies the requester exactly once", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestApproved)

		_, err := env.svc.Cancel(ctx, 1, request.ID)
		require.NoError(t, err)

		created := env.inbox.ofType(domain.NotifyFlightCancelled)
		require.Len(t, created, 1)
		require.NotNil(t, created[0].RecipientID)
		assert.Equal(t, request.RequesterID, *created[0].RecipientID)
	})

	t.Run("cancel by plan resolves the owning request", func(t *testing.T) {
		env := newFlightEnv()
		request := env.seedRequest(t, domain.RequestScheduled)
		plan := env.seedPlan(t, request.ID, domain.PlanScheduled)

		updated, err := env.svc.CancelByPlan(ctx, 1, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RequestCancelled, updated.Status)
	})
}

// Full lifecycle of a charter from Alta Floresta (SBAT) to Cuiabá (SBCY).
func TestFlightServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newFlightEnv()

	request, err := env.svc.Submit(ctx, 7, "Marina Souza", &SubmitInput{
		AircraftRegistration: "PR-SBR",
		FlightDate:           "2026-09-15",
		DepartureTime:        "08:30",
		Origin:               "SBAT",
		Destination:          "SBCY",
		Passengers:           3,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestRequested, request.Status)

	_, err = env.svc.Approve(ctx, 1, request.ID)
	require.NoError(t, err)

	pilotID := uint(12)
	plan, err := env.svc.Schedule(ctx, 1, request.ID, &ScheduleInput{
		FlightDate:          "2026-09-15",
		DepartureTime:       "08:30",
		EstimatedArrival:    "10:05",
		PilotID:             &pilotID,
		EstimatedFuelLiters: 420,
	})
	require.NoError(t, err)
	assert.Equal(t, "SBAT", plan.Origin)
	assert.Equal(t, "SBCY", plan.Destination)

	_, err = env.svc.Confirm(ctx, 1, plan.ID)
	require.NoError(t, err)

	_, err = env.svc.Start(ctx, 12, plan.ID)
	require.NoError(t, err)

	finished, err := env.svc.Complete(ctx, 12, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanCompleted, finished.Status)

	stored, err := env.requests.GetByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestCompleted, stored.Status)

	// one notification per mapped transition, none for approve/confirm/start
	assert.Len(t, env.inbox.notifications, 3)
	assert.Len(t, env.inbox.ofType(domain.NotifyNewRequest), 1)
	assert.Len(t, env.inbox.ofType(domain.NotifyFlightScheduled), 1)
	assert.Len(t, env.inbox.ofType(domain.NotifyFlightCompleted), 1)

	_, err = env.svc.Cancel(ctx, 1, request.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestFlightServiceListing(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by status", func(t *testing.T) {
		env := newFlightEnv()
		env.seedRequest(t, domain.RequestRequested)
		env.seedRequest(t, domain.RequestApproved)
		env.seedRequest(t, domain.RequestApproved)

		approved, err := env.svc.ListRequests(ctx, 1, domain.RequestApproved)
		require.NoError(t, err)
		assert.Len(t, approved, 2)

		all, err := env.svc.ListRequests(ctx, 1, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("rejects an unknown status filter", func(t *testing.T) {
		env := newFlightEnv()

		_, err := env.svc.ListRequests(ctx, 1, domain.RequestStatus("finished"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("my requests only returns the actor's", func(t *testing.T) {
		env := newFlightEnv()
		mine := env.seedRequest(t, domain.RequestRequested)
		other := env.seedRequest(t, domain.RequestRequested)
		other.RequesterID = 99
		require.NoError(t, env.requests.Update(ctx, other))

		listed, err := env.svc.ListMyRequests(ctx, mine.RequesterID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, mine.ID, listed[0].ID)
	})
}
