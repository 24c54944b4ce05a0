package repositories

import (
	"context"

	"sharebrasil-ops/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// PayrollRepository handles payroll document metadata data access
type PayrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll repository
func NewPayrollRepository(db *gorm.DB) *PayrollRepository {
	return &PayrollRepository{db: db}
}

// Create creates a new payroll document record
func (r *PayrollRepository) Create(ctx context.Context, doc *models.PayrollDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// GetByID gets a payroll document by ID
func (r *PayrollRepository) GetByID(ctx context.Context, id uint) (*models.PayrollDocument, error) {
	var doc models.PayrollDocument
	err := r.db.WithContext(ctx).First(&doc, id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByOwner lists payroll documents for one owner, newest first.
// An empty folder returns all of the owner's documents.
func (r *PayrollRepository) ListByOwner(ctx context.Context, ownerID uint, folder string) ([]*models.PayrollDocument, error) {
	var docs []*models.PayrollDocument
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if folder != "" {
		q = q.Where("folder = ?", folder)
	}
	err := q.Order("created_at DESC").Find(&docs).Error
	return docs, err
}

// Delete soft deletes a payroll document record
func (r *PayrollRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.PayrollDocument{}, id).Error
}
