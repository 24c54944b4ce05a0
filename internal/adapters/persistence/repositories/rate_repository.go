package repositories

import (
	"context"

	"sharebrasil-ops/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// hourlyRateRepository implements HourlyRateRepository interface
type hourlyRateRepository struct {
	db *gorm.DB
}

// NewHourlyRateRepository creates a new hourly rate repository
func NewHourlyRateRepository(db *gorm.DB) HourlyRateRepository {
	return &hourlyRateRepository{db: db}
}

// Create creates a new hourly rate
func (r *hourlyRateRepository) Create(ctx context.Context, rate *models.HourlyRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

// GetByID gets an hourly rate by ID
func (r *hourlyRateRepository) GetByID(ctx context.Context, id uint) (*models.HourlyRate, error) {
	var rate models.HourlyRate
	err := r.db.WithContext(ctx).First(&rate, id).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// List lists all hourly rates, newest first
func (r *hourlyRateRepository) List(ctx context.Context) ([]*models.HourlyRate, error) {
	var rates []*models.HourlyRate
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rates).Error
	return rates, err
}

// ListByRegistration lists hourly rates for one aircraft, newest first
func (r *hourlyRateRepository) ListByRegistration(ctx context.Context, registration string) ([]*models.HourlyRate, error) {
	var rates []*models.HourlyRate
	err := r.db.WithContext(ctx).
		Where("aircraft_registration = ?", registration).
		Order("created_at DESC").
		Find(&rates).Error
	return rates, err
}

// Update updates an hourly rate
func (r *hourlyRateRepository) Update(ctx context.Context, rate *models.HourlyRate) error {
	return r.db.WithContext(ctx).Save(rate).Error
}

// Delete soft deletes an hourly rate
func (r *hourlyRateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.HourlyRate{}, id).Error
}
