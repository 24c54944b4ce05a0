package services

import (
	"fmt"
	"time"

	"sharebrasil-ops/internal/core/domain"
)

// BenefitService computes benefit balances (vale refeição/alimentação style):
// a credit accrues per business day, spending draws it down. Pure computation,
// nothing is persisted.
type BenefitService struct{}

// NewBenefitService creates a new benefit service
func NewBenefitService() *BenefitService {
	return &BenefitService{}
}

// BenefitInput represents one balance computation
type BenefitInput struct {
	DailyValue float64 `json:"daily_value" validate:"required,gt=0"`
	StartDate  string  `json:"start_date" validate:"required"`
	EndDate    string  `json:"end_date" validate:"required"`
	Spent      float64 `json:"spent,omitempty"`
}

// BenefitBalance is the result of a balance computation
type BenefitBalance struct {
	BusinessDays int     `json:"business_days"`
	Accrued      float64 `json:"accrued"`
	Spent        float64 `json:"spent"`
	Balance      float64 `json:"balance"`
}

// PeriodBalance computes the benefit balance accrued between two dates
// (inclusive, YYYY-MM-DD) minus what was spent. Weekends do not accrue.
func (s *BenefitService) PeriodBalance(input *BenefitInput) (*BenefitBalance, error) {
	if input.DailyValue <= 0 {
		return nil, fmt.Errorf("%w: daily value must be positive", domain.ErrInvalidInput)
	}
	if input.Spent < 0 {
		return nil, fmt.Errorf("%w: spent amount cannot be negative", domain.ErrInvalidInput)
	}

	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", domain.ErrInvalidInput, input.StartDate)
	}
	end, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %q", domain.ErrInvalidInput, input.EndDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", domain.ErrInvalidInput)
	}

	days := BusinessDays(start, end)
	accrued := input.DailyValue * float64(days)

	return &BenefitBalance{
		BusinessDays: days,
		Accrued:      accrued,
		Spent:        input.Spent,
		Balance:      accrued - input.Spent,
	}, nil
}

// BusinessDays counts Monday–Friday days between start and end, inclusive
func BusinessDays(start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
