package services

import (
	"context"
	"errors"
	"fmt"

	"sharebrasil-ops/internal/adapters/persistence/models"
	"sharebrasil-ops/internal/adapters/persistence/repositories"
	"sharebrasil-ops/internal/core/domain"

	"gorm.io/gorm"
)

// RateService manages per-aircraft hourly billing rates
type RateService struct {
	repo repositories.HourlyRateRepository
}

// NewRateService creates a new rate service
func NewRateService(repo repositories.HourlyRateRepository) *RateService {
	return &RateService{repo: repo}
}

// RateInput represents hourly rate fields
type RateInput struct {
	AircraftRegistration string            `json:"aircraft_registration" validate:"required"`
	AircraftModel        string            `json:"aircraft_model,omitempty"`
	RateValue            float64           `json:"rate_value" validate:"required,gt=0"`
	Status               domain.RateStatus `json:"status,omitempty"`
	Notes                string            `json:"notes,omitempty"`
}

// Create registers a new hourly rate
func (s *RateService) Create(ctx context.Context, actorID uint, input *RateInput) (*models.HourlyRate, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if input.AircraftRegistration == "" {
		return nil, fmt.Errorf("%w: aircraft registration is required", domain.ErrInvalidInput)
	}
	if input.RateValue <= 0 {
		return nil, fmt.Errorf("%w: rate value must be positive", domain.ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = domain.RateActive
	}
	if status != domain.RateActive && status != domain.RateInactive {
		return nil, fmt.Errorf("%w: unknown rate status %q", domain.ErrInvalidInput, status)
	}

	rate := &models.HourlyRate{
		AircraftRegistration: input.AircraftRegistration,
		AircraftModel:        input.AircraftModel,
		RateValue:            input.RateValue,
		Status:               status,
		Notes:                input.Notes,
	}
	if err := s.repo.Create(ctx, rate); err != nil {
		return nil, storeErr(err)
	}
	return rate, nil
}

// Get gets an hourly rate by ID
func (s *RateService) Get(ctx context.Context, actorID, rateID uint) (*models.HourlyRate, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	return s.getRate(ctx, rateID)
}

// List lists all hourly rates
func (s *RateService) List(ctx context.Context, actorID uint) ([]*models.HourlyRate, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	rates, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return rates, nil
}

// FindActiveRate scans rates for the registration in retrieval order and
// returns the first active one. When duplicate active rates exist the first
// wins; callers must not assume ordering beyond what the store provides.
func (s *RateService) FindActiveRate(ctx context.Context, actorID uint, registration string) (*models.HourlyRate, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if registration == "" {
		return nil, fmt.Errorf("%w: aircraft registration is required", domain.ErrInvalidInput)
	}

	rates, err := s.repo.ListByRegistration(ctx, registration)
	if err != nil {
		return nil, storeErr(err)
	}
	for _, rate := range rates {
		if rate.Status == domain.RateActive {
			return rate, nil
		}
	}
	return nil, domain.ErrRateNotFound
}

// Update replaces the mutable fields of an hourly rate
func (s *RateService) Update(ctx context.Context, actorID, rateID uint, input *RateInput) (*models.HourlyRate, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	rate, err := s.getRate(ctx, rateID)
	if err != nil {
		return nil, err
	}

	if input.AircraftRegistration != "" {
		rate.AircraftRegistration = input.AircraftRegistration
	}
	if input.AircraftModel != "" {
		rate.AircraftModel = input.AircraftModel
	}
	if input.RateValue > 0 {
		rate.RateValue = input.RateValue
	}
	if input.Status != "" {
		if input.Status != domain.RateActive && input.Status != domain.RateInactive {
			return nil, fmt.Errorf("%w: unknown rate status %q", domain.ErrInvalidInput, input.Status)
		}
		rate.Status = input.Status
	}
	if input.Notes != "" {
		rate.Notes = input.Notes
	}

	if err := s.repo.Update(ctx, rate); err != nil {
		return nil, storeErr(err)
	}
	return rate, nil
}

// Delete removes an hourly rate
func (s *RateService) Delete(ctx context.Context, actorID, rateID uint) error {
	if actorID == 0 {
		return domain.ErrUnauthenticated
	}
	if _, err := s.getRate(ctx, rateID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, rateID); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *RateService) getRate(ctx context.Context, id uint) (*models.HourlyRate, error) {
	rate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRateNotFound
		}
		return nil, storeErr(err)
	}
	return rate, nil
}
