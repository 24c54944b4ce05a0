package services

import (
	"testing"
	"time"

	"sharebrasil-ops/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessDays(t *testing.T) {
	day := func(s string) time.Time {
		t.Helper()
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single weekday", "2026-09-01", "2026-09-01", 1},
		{"single saturday", "2026-09-05", "2026-09-05", 0},
		{"full week monday to sunday", "2026-08-31", "2026-09-06", 5},
		{"weekend only", "2026-09-05", "2026-09-06", 0},
		{"across two weekends", "2026-09-04", "2026-09-14", 7},
		{"september 2026", "2026-09-01", "2026-09-30", 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BusinessDays(day(tt.start), day(tt.end)))
		})
	}
}

func TestBenefitServicePeriodBalance(t *testing.T) {
	svc := NewBenefitService()

	t.Run("accrues per business day minus spent", func(t *testing.T) {
		balance, err := svc.PeriodBalance(&BenefitInput{
			DailyValue: 35,
			StartDate:  "2026-08-31",
			EndDate:    "2026-09-06",
			Spent:      120.50,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, balance.BusinessDays)
		assert.Equal(t, 175.0, balance.Accrued)
		assert.Equal(t, 120.50, balance.Spent)
		assert.InDelta(t, 54.50, balance.Balance, 0.001)
	})

	t.Run("weekend-only period accrues nothing", func(t *testing.T) {
		balance, err := svc.PeriodBalance(&BenefitInput{
			DailyValue: 35,
			StartDate:  "2026-09-05",
			EndDate:    "2026-09-06",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, balance.BusinessDays)
		assert.Equal(t, 0.0, balance.Balance)
	})

	t.Run("balance can go negative", func(t *testing.T) {
		balance, err := svc.PeriodBalance(&BenefitInput{
			DailyValue: 35,
			StartDate:  "2026-09-01",
			EndDate:    "2026-09-01",
			Spent:      100,
		})
		require.NoError(t, err)
		assert.Equal(t, -65.0, balance.Balance)
	})

	t.Run("rejects a non-positive daily value", func(t *testing.T) {
		_, err := svc.PeriodBalance(&BenefitInput{
			DailyValue: 0,
			StartDate:  "2026-09-01",
			EndDate:    "2026-09-02",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects a negative spent amount", func(t *testing.T) {
		_, err := svc.PeriodBalance(&BenefitInput{
			DailyValue: 35,
			StartDate:  "2026-09-01",
			EndDate:    "2026-09-02",
			Spent:      -1,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := svc.PeriodBalance(&BenefitInput{
			DailyValue: 35,
			StartDate:  "01/09/2026",
			EndDate:    "2026-09-02",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects an inverted period", func(t *testing.T) {
		_, err := svc.PeriodBalance(&BenefitInput{
			DailyValue: 35,
			StartDate:  "2026-09-10",
			EndDate:    "2026-09-01",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
