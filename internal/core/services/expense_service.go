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

// ErrExpenseNotFound is returned when no expense report exists for an id
var ErrExpenseNotFound = errors.New("expense report not found")

// ExpenseService manages travel-expense reimbursement reports. Reports are
// scoped to their owner; only the owner can read or change them.
type ExpenseService struct {
	repo *repositories.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(repo *repositories.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// ExpenseInput represents expense report fields
type ExpenseInput struct {
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category,omitempty"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	ExpenseDate string  `json:"expense_date" validate:"required"`
	ReceiptNote string  `json:"receipt_note,omitempty"`
}

// Create registers an expense report owned by the acting user
func (s *ExpenseService) Create(ctx context.Context, actorID uint, input *ExpenseInput) (*models.ExpenseReport, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if input.Description == "" || input.ExpenseDate == "" {
		return nil, fmt.Errorf("%w: description and expense date are required", domain.ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	report := &models.ExpenseReport{
		OwnerID:     actorID,
		Description: input.Description,
		Category:    input.Category,
		Amount:      input.Amount,
		ExpenseDate: input.ExpenseDate,
		ReceiptNote: input.ReceiptNote,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, storeErr(err)
	}
	return report, nil
}

// Get gets one of the acting user's expense reports
func (s *ExpenseService) Get(ctx context.Context, actorID, reportID uint) (*models.ExpenseReport, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	return s.getOwned(ctx, actorID, reportID)
}

// List lists the acting user's expense reports, optionally by category
func (s *ExpenseService) List(ctx context.Context, actorID uint, category string) ([]*models.ExpenseReport, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	reports, err := s.repo.ListByOwner(ctx, actorID, category)
	if err != nil {
		return nil, storeErr(err)
	}
	return reports, nil
}

// Update replaces the mutable fields of an expense report
func (s *ExpenseService) Update(ctx context.Context, actorID, reportID uint, input *ExpenseInput) (*models.ExpenseReport, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	report, err := s.getOwned(ctx, actorID, reportID)
	if err != nil {
		return nil, err
	}

	if input.Description != "" {
		report.Description = input.Description
	}
	if input.Category != "" {
		report.Category = input.Category
	}
	if input.Amount > 0 {
		report.Amount = input.Amount
	}
	if input.ExpenseDate != "" {
		report.ExpenseDate = input.ExpenseDate
	}
	if input.ReceiptNote != "" {
		report.ReceiptNote = input.ReceiptNote
	}

	if err := s.repo.Update(ctx, report); err != nil {
		return nil, storeErr(err)
	}
	return report, nil
}

// Delete removes one of the acting user's expense reports
func (s *ExpenseService) Delete(ctx context.Context, actorID, reportID uint) error {
	if actorID == 0 {
		return domain.ErrUnauthenticated
	}
	if _, err := s.getOwned(ctx, actorID, reportID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, reportID); err != nil {
		return storeErr(err)
	}
	return nil
}

// getOwned fetches a report and hides other owners' reports as not found
func (s *ExpenseService) getOwned(ctx context.Context, actorID, id uint) (*models.ExpenseReport, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, storeErr(err)
	}
	if report.OwnerID != actorID {
		return nil, ErrExpenseNotFound
	}
	return report, nil
}
