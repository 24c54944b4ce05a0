package repositories

import (
	"context"

	"sharebrasil-ops/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// CrewHoursRepository handles crew flight-hour ledger data access
type CrewHoursRepository struct {
	db *gorm.DB
}

// NewCrewHoursRepository creates a new crew hours repository
func NewCrewHoursRepository(db *gorm.DB) *CrewHoursRepository {
	return &CrewHoursRepository{db: db}
}

// Create creates a new ledger entry
func (r *CrewHoursRepository) Create(ctx context.Context, entry *models.CrewHoursEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID gets a ledger entry by ID
func (r *CrewHoursRepository) GetByID(ctx context.Context, id uint) (*models.CrewHoursEntry, error) {
	var entry models.CrewHoursEntry
	err := r.db.WithContext(ctx).First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List lists all ledger entries, newest first
func (r *CrewHoursRepository) List(ctx context.Context) ([]*models.CrewHoursEntry, error) {
	var entries []*models.CrewHoursEntry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// ListByPilot lists ledger entries for one pilot, newest first
func (r *CrewHoursRepository) ListByPilot(ctx context.Context, pilotID uint) ([]*models.CrewHoursEntry, error) {
	var entries []*models.CrewHoursEntry
	err := r.db.WithContext(ctx).
		Where("pilot_id = ?", pilotID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// SumByPilot returns the total logged hours for one pilot
func (r *CrewHoursRepository) SumByPilot(ctx context.Context, pilotID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.CrewHoursEntry{}).
		Where("pilot_id = ?", pilotID).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&total).Error
	return total, err
}

// Update updates a ledger entry
func (r *CrewHoursRepository) Update(ctx context.Context, entry *models.CrewHoursEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete soft deletes a ledger entry
func (r *CrewHoursRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.CrewHoursEntry{}, id).Error
}
