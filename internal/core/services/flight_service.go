package services

import (
	"context"
	"errors"
	"fmt"

	"sharebrasil-ops/internal/adapters/persistence/models"
	"sharebrasil-ops/internal/adapters/persistence/repositories"
	"sharebrasil-ops/internal/core/domain"
	"sharebrasil-ops/internal/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FlightService drives the flight request/plan lifecycle:
//
//	requested -> approved -> scheduled -> in_progress -> completed
//
// with cancelled reachable from any non-terminal state. Transitions are
// idempotent-rejecting: re-applying a transition the entity already satisfied
// fails with ErrInvalidTransition. Each mapped transition appends one
// notification; notification writes are best-effort and never roll back a
// committed transition.
type FlightService struct {
	requestRepo repositories.FlightRequestRepository
	planRepo    repositories.FlightPlanRepository
	notify      *NotificationService
	log         *zap.Logger
}

// NewFlightService creates a new flight service
func NewFlightService(
	requestRepo repositories.FlightRequestRepository,
	planRepo repositories.FlightPlanRepository,
	notify *NotificationService,
	log *zap.Logger,
) *FlightService {
	return &FlightService{
		requestRepo: requestRepo,
		planRepo:    planRepo,
		notify:      notify,
		log:         log,
	}
}

// SubmitInput represents a new flight request
type SubmitInput struct {
	AircraftRegistration string          `json:"aircraft_registration" validate:"required"`
	FlightDate           string          `json:"flight_date" validate:"required"`
	DepartureTime        string          `json:"departure_time,omitempty"`
	Origin               string          `json:"origin" validate:"required"`
	Destination          string          `json:"destination" validate:"required"`
	Passengers           int             `json:"passengers" validate:"required,gte=1"`
	Notes                string          `json:"notes,omitempty"`
	Priority             domain.Priority `json:"priority,omitempty"`
}

// Submit creates a flight request in state requested and notifies the
// coordinator role.
func (s *FlightService) Submit(ctx context.Context, actorID uint, actorName string, input *SubmitInput) (*models.FlightRequest, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if input.Origin == "" || input.Destination == "" || input.FlightDate == "" {
		return nil, fmt.Errorf("%w: origin, destination and date are required", domain.ErrInvalidInput)
	}
	if input.Passengers < 1 {
		return nil, fmt.Errorf("%w: passenger count must be at least 1", domain.ErrInvalidInput)
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, priority)
	}

	request := &models.FlightRequest{
		RequesterID:          actorID,
		RequesterName:        actorName,
		AircraftRegistration: input.AircraftRegistration,
		FlightDate:           input.FlightDate,
		DepartureTime:        input.DepartureTime,
		Origin:               input.Origin,
		Destination:          input.Destination,
		Passengers:           input.Passengers,
		Notes:                input.Notes,
		Status:               domain.RequestRequested,
		Priority:             priority,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, storeErr(err)
	}
	metrics.FlightTransitions.WithLabelValues("submit").Inc()

	s.emit(func() error { return s.notify.NotifyNewRequest(ctx, request) }, request.ID)

	return request, nil
}

// Approve transitions a request from requested to approved
func (s *FlightService) Approve(ctx context.Context, actorID, requestID uint) (*models.FlightRequest, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	request, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := s.transitionRequest(ctx, request, domain.RequestApproved, "approve"); err != nil {
		return nil, err
	}

	return request, nil
}

// ScheduleInput represents flight plan fields supplied at scheduling time.
// Origin and destination default to the request's; when supplied they must
// match it.
type ScheduleInput struct {
	FlightDate          string  `json:"flight_date" validate:"required"`
	DepartureTime       string  `json:"departure_time,omitempty"`
	EstimatedArrival    string  `json:"estimated_arrival,omitempty"`
	Origin              string  `json:"origin,omitempty"`
	Destination         string  `json:"destination,omitempty"`
	PilotID             *uint   `json:"pilot_id,omitempty"`
	CopilotID           *uint   `json:"copilot_id,omitempty"`
	EstimatedFuelLiters float64 `json:"estimated_fuel_liters,omitempty"`
	CoordinatorNotes    string  `json:"coordinator_notes,omitempty"`
}

// Schedule derives a flight plan from an approved request, moves the request
// to scheduled and notifies the requester.
func (s *FlightService) Schedule(ctx context.Context, actorID, requestID uint, input *ScheduleInput) (*models.FlightPlan, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	request, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !request.Status.CanTransitionTo(domain.RequestScheduled) {
		metrics.FlightTransitionRejections.WithLabelValues("schedule").Inc()
		return nil, fmt.Errorf("%w: cannot schedule request %d in status %s",
			domain.ErrInvalidTransition, request.ID, request.Status)
	}

	if input.FlightDate == "" {
		return nil, fmt.Errorf("%w: flight date is required", domain.ErrInvalidPlan)
	}
	if input.Origin != "" && input.Origin != request.Origin {
		return nil, fmt.Errorf("%w: origin %q does not match request origin %q",
			domain.ErrInvalidPlan, input.Origin, request.Origin)
	}
	if input.Destination != "" && input.Destination != request.Destination {
		return nil, fmt.Errorf("%w: destination %q does not match request destination %q",
			domain.ErrInvalidPlan, input.Destination, request.Destination)
	}

	departure := input.DepartureTime
	if departure == "" {
		departure = request.DepartureTime
	}

	plan := &models.FlightPlan{
		FlightRequestID:      request.ID,
		AircraftRegistration: request.AircraftRegistration,
		FlightDate:           input.FlightDate,
		DepartureTime:        departure,
		EstimatedArrival:     input.EstimatedArrival,
		Origin:               request.Origin,
		Destination:          request.Destination,
		PilotID:              input.PilotID,
		CopilotID:            input.CopilotID,
		EstimatedFuelLiters:  input.EstimatedFuelLiters,
		CoordinatorNotes:     input.CoordinatorNotes,
		Status:               domain.PlanScheduled,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, storeErr(err)
	}

	request.Status = domain.RequestScheduled
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, storeErr(err)
	}
	metrics.FlightTransitions.WithLabelValues("schedule").Inc()

	s.emit(func() error { return s.notify.NotifyFlightScheduled(ctx, request, plan) }, request.ID)

	return plan, nil
}

// Confirm transitions a plan from scheduled to confirmed
func (s *FlightService) Confirm(ctx context.Context, actorID, planID uint) (*models.FlightPlan, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	if !plan.Status.CanTransitionTo(domain.PlanConfirmed) {
		metrics.FlightTransitionRejections.WithLabelValues("confirm").Inc()
		return nil, fmt.Errorf("%w: cannot confirm plan %d in status %s",
			domain.ErrInvalidTransition, plan.ID, plan.Status)
	}

	plan.Status = domain.PlanConfirmed
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, storeErr(err)
	}
	metrics.FlightTransitions.WithLabelValues("confirm").Inc()

	return plan, nil
}

// Start transitions a plan (and its request) to in_progress
func (s *FlightService) Start(ctx context.Context, actorID, planID uint) (*models.FlightPlan, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	if !plan.Status.CanTransitionTo(domain.PlanInProgress) {
		metrics.FlightTransitionRejections.WithLabelValues("start").Inc()
		return nil, fmt.Errorf("%w: cannot start plan %d in status %s",
			domain.ErrInvalidTransition, plan.ID, plan.Status)
	}

	plan.Status = domain.PlanInProgress
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, storeErr(err)
	}

	if err := s.syncRequestStatus(ctx, plan.FlightRequestID, domain.RequestInProgress); err != nil {
		return nil, err
	}
	metrics.FlightTransitions.WithLabelValues("start").Inc()

	return plan, nil
}

// Complete transitions a plan (and its request) from in_progress to completed
// and notifies the requester.
func (s *FlightService) Complete(ctx context.Context, actorID, planID uint) (*models.FlightPlan, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	if !plan.Status.CanTransitionTo(domain.PlanCompleted) {
		metrics.FlightTransitionRejections.WithLabelValues("complete").Inc()
		return nil, fmt.Errorf("%w: cannot complete plan %d in status %s",
			domain.ErrInvalidTransition, plan.ID, plan.Status)
	}

	request, err := s.getRequest(ctx, plan.FlightRequestID)
	if err != nil {
		return nil, err
	}

	plan.Status = domain.PlanCompleted
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, storeErr(err)
	}

	request.Status = domain.RequestCompleted
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, storeErr(err)
	}
	metrics.FlightTransitions.WithLabelValues("complete").Inc()

	s.emit(func() error { return s.notify.NotifyFlightCompleted(ctx, request, plan) }, request.ID)

	return plan, nil
}

// Cancel cancels a request (and its plan, when one exists) from any
// non-terminal state and notifies the requester.
func (s *FlightService) Cancel(ctx context.Context, actorID, requestID uint) (*models.FlightRequest, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	request, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !request.Status.CanTransitionTo(domain.RequestCancelled) {
		metrics.FlightTransitionRejections.WithLabelValues("cancel").Inc()
		return nil, fmt.Errorf("%w: cannot cancel request %d in status %s",
			domain.ErrInvalidTransition, request.ID, request.Status)
	}

	request.Status = domain.RequestCancelled
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, storeErr(err)
	}

	plan, err := s.planRepo.GetByRequestID(ctx, requestID)
	switch {
	case err == nil:
		if !plan.Status.IsTerminal() {
			plan.Status = domain.PlanCancelled
			if err := s.planRepo.Update(ctx, plan); err != nil {
				return nil, storeErr(err)
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no plan derived yet, nothing to cancel
	default:
		return nil, storeErr(err)
	}
	metrics.FlightTransitions.WithLabelValues("cancel").Inc()

	s.emit(func() error { return s.notify.NotifyFlightCancelled(ctx, request) }, request.ID)

	return request, nil
}

// CancelByPlan cancels the request a plan was derived from
func (s *FlightService) CancelByPlan(ctx context.Context, actorID, planID uint) (*models.FlightRequest, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	return s.Cancel(ctx, actorID, plan.FlightRequestID)
}

// GetRequest gets a flight request by ID
func (s *FlightService) GetRequest(ctx context.Context, actorID, requestID uint) (*models.FlightRequest, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	return s.getRequest(ctx, requestID)
}

// ListRequests lists flight requests, optionally restricted to one status
func (s *FlightService) ListRequests(ctx context.Context, actorID uint, status domain.RequestStatus) ([]*models.FlightRequest, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if status != "" {
		if !domain.ValidRequestStatus(status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
		}
		requests, err := s.requestRepo.ListByStatus(ctx, status)
		if err != nil {
			return nil, storeErr(err)
		}
		return requests, nil
	}
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return requests, nil
}

// ListMyRequests lists flight requests created by the acting user
func (s *FlightService) ListMyRequests(ctx context.Context, actorID uint) ([]*models.FlightRequest, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	requests, err := s.requestRepo.ListByRequester(ctx, actorID)
	if err != nil {
		return nil, storeErr(err)
	}
	return requests, nil
}

// GetPlan gets a flight plan by ID
func (s *FlightService) GetPlan(ctx context.Context, actorID, planID uint) (*models.FlightPlan, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	return s.getPlan(ctx, planID)
}

// ListPlans lists all flight plans
func (s *FlightService) ListPlans(ctx context.Context, actorID uint) ([]*models.FlightPlan, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return plans, nil
}

func (s *FlightService) getRequest(ctx context.Context, id uint) (*models.FlightRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, storeErr(err)
	}
	return request, nil
}

func (s *FlightService) getPlan(ctx context.Context, id uint) (*models.FlightPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, storeErr(err)
	}
	return plan, nil
}

// transitionRequest applies a single forward transition on a request
func (s *FlightService) transitionRequest(ctx context.Context, request *models.FlightRequest, next domain.RequestStatus, op string) error {
	if !request.Status.CanTransitionTo(next) {
		metrics.FlightTransitionRejections.WithLabelValues(op).Inc()
		return fmt.Errorf("%w: cannot %s request %d in status %s",
			domain.ErrInvalidTransition, op, request.ID, request.Status)
	}

	request.Status = next
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return storeErr(err)
	}
	metrics.FlightTransitions.WithLabelValues(op).Inc()
	return nil
}

// syncRequestStatus moves the source request alongside its plan. The plan's
// own status gates the operation, so the request follows unconditionally.
func (s *FlightService) syncRequestStatus(ctx context.Context, requestID uint, next domain.RequestStatus) error {
	request, err := s.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	request.Status = next
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return storeErr(err)
	}
	return nil
}

// emit runs a notification write after a committed transition. Failures are
// logged and counted, never propagated: the transition stands.
func (s *FlightService) emit(fn func() error, requestID uint) {
	if err := fn(); err != nil {
		metrics.NotificationFailures.Inc()
		s.log.Warn("notification delivery failed",
			zap.Uint("request_id", requestID),
			zap.Error(fmt.Errorf("%w: %v", domain.ErrNotificationDeliveryFailed, err)),
		)
	}
}

// storeErr wraps an unclassified repository failure as a store outage
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
