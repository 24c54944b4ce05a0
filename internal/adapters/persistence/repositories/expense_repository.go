package repositories

import (
	"context"

	"sharebrasil-ops/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ExpenseRepository handles expense report data access
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create creates a new expense report
func (r *ExpenseRepository) Create(ctx context.Context, report *models.ExpenseReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// GetByID gets an expense report by ID
func (r *ExpenseRepository) GetByID(ctx context.Context, id uint) (*models.ExpenseReport, error) {
	var report models.ExpenseReport
	err := r.db.WithContext(ctx).First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ListByOwner lists expense reports for one owner, newest first.
// An empty category returns all of the owner's reports.
func (r *ExpenseRepository) ListByOwner(ctx context.Context, ownerID uint, category string) ([]*models.ExpenseReport, error) {
	var reports []*models.ExpenseReport
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("created_at DESC").Find(&reports).Error
	return reports, err
}

// Update updates an expense report
func (r *ExpenseRepository) Update(ctx context.Context, report *models.ExpenseReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

// Delete soft deletes an expense report
func (r *ExpenseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ExpenseReport{}, id).Error
}
