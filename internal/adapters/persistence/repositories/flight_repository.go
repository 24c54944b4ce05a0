package repositories

import (
	"context"

	"sharebrasil-ops/internal/adapters/persistence/models"
	"sharebrasil-ops/internal/core/domain"

	"gorm.io/gorm"
)

// flightRequestRepository implements FlightRequestRepository interface
type flightRequestRepository struct {
	db *gorm.DB
}

// NewFlightRequestRepository creates a new flight request repository
func NewFlightRequestRepository(db *gorm.DB) FlightRequestRepository {
	return &flightRequestRepository{db: db}
}

// Create creates a new flight request
func (r *flightRequestRepository) Create(ctx context.Context, request *models.FlightRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a flight request by ID with its plan
func (r *flightRequestRepository) GetByID(ctx context.Context, id uint) (*models.FlightRequest, error) {
	var request models.FlightRequest
	err := r.db.WithContext(ctx).
		Preload("Plan").
		First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// List lists all flight requests, newest first
func (r *flightRequestRepository) List(ctx context.Context) ([]*models.FlightRequest, error) {
	var requests []*models.FlightRequest
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// ListByRequester lists flight requests created by one requester
func (r *flightRequestRepository) ListByRequester(ctx context.Context, requesterID uint) ([]*models.FlightRequest, error) {
	var requests []*models.FlightRequest
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// ListByStatus lists flight requests in one status
func (r *flightRequestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]*models.FlightRequest, error) {
	var requests []*models.FlightRequest
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// Update updates a flight request
func (r *flightRequestRepository) Update(ctx context.Context, request *models.FlightRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// Delete soft deletes a flight request
func (r *flightRequestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.FlightRequest{}, id).Error
}

// flightPlanRepository implements FlightPlanRepository interface
type flightPlanRepository struct {
	db *gorm.DB
}

// NewFlightPlanRepository creates a new flight plan repository
func NewFlightPlanRepository(db *gorm.DB) FlightPlanRepository {
	return &flightPlanRepository{db: db}
}

// Create creates a new flight plan
func (r *flightPlanRepository) Create(ctx context.Context, plan *models.FlightPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// GetByID gets a flight plan by ID with relations
func (r *flightPlanRepository) GetByID(ctx context.Context, id uint) (*models.FlightPlan, error) {
	var plan models.FlightPlan
	err := r.db.WithContext(ctx).
		Preload("Pilot").
		Preload("Copilot").
		First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByRequestID gets the plan derived from one flight request
func (r *flightPlanRepository) GetByRequestID(ctx context.Context, requestID uint) (*models.FlightPlan, error) {
	var plan models.FlightPlan
	err := r.db.WithContext(ctx).
		Where("flight_request_id = ?", requestID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// List lists all flight plans, newest first
func (r *flightPlanRepository) List(ctx context.Context) ([]*models.FlightPlan, error) {
	var plans []*models.FlightPlan
	err := r.db.WithContext(ctx).
		Preload("Pilot").
		Preload("Copilot").
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

// Update updates a flight plan
func (r *flightPlanRepository) Update(ctx context.Context, plan *models.FlightPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// Delete soft deletes a flight plan
func (r *flightPlanRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.FlightPlan{}, id).Error
}
