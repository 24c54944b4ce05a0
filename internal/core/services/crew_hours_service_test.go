package services

import (
	"context"
	"testing"

	"sharebrasil-ops/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCrewEntry(pilotID uint, hours float64) *CrewHoursInput {
	return &CrewHoursInput{
		PilotID:              pilotID,
		PilotName:            "Carlos Lima",
		AircraftRegistration: "PR-SBR",
		FlightDate:           "2026-09-15",
		Hours:                hours,
	}
}

func TestCrewHoursServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults crew role to pilot", func(t *testing.T) {
		svc := NewCrewHoursService(newFakeCrewRepo())

		entry, err := svc.Create(ctx, 1, newCrewEntry(12, 1.6))
		require.NoError(t, err)
		assert.Equal(t, "pilot", entry.CrewRole)
		assert.NotZero(t, entry.ID)
	})

	t.Run("keeps an explicit crew role", func(t *testing.T) {
		svc := NewCrewHoursService(newFakeCrewRepo())

		input := newCrewEntry(12, 1.6)
		input.CrewRole = "copilot"
		entry, err := svc.Create(ctx, 1, input)
		require.NoError(t, err)
		assert.Equal(t, "copilot", entry.CrewRole)
	})

	t.Run("rejects non-positive hours", func(t *testing.T) {
		svc := NewCrewHoursService(newFakeCrewRepo())

		_, err := svc.Create(ctx, 1, newCrewEntry(12, 0))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects a missing pilot id", func(t *testing.T) {
		svc := NewCrewHoursService(newFakeCrewRepo())

		_, err := svc.Create(ctx, 1, newCrewEntry(0, 1.6))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCrewHoursServiceSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("totals only the pilot's entries", func(t *testing.T) {
		svc := NewCrewHoursService(newFakeCrewRepo())

		for _, hours := range []float64{1.5, 2.2, 0.8} {
			_, err := svc.Create(ctx, 1, newCrewEntry(12, hours))
			require.NoError(t, err)
		}
		_, err := svc.Create(ctx, 1, newCrewEntry(99, 4.0))
		require.NoError(t, err)

		summary, err := svc.Summary(ctx, 1, 12)
		require.NoError(t, err)
		assert.Equal(t, uint(12), summary.PilotID)
		assert.Equal(t, 3, summary.Entries)
		assert.InDelta(t, 4.5, summary.TotalHours, 0.001)
	})

	t.Run("pilot with no entries sums to zero", func(t *testing.T) {
		svc := NewCrewHoursService(newFakeCrewRepo())

		summary, err := svc.Summary(ctx, 1, 12)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Entries)
		assert.Equal(t, 0.0, summary.TotalHours)
	})

	t.Run("requires a pilot id", func(t *testing.T) {
		svc := NewCrewHoursService(newFakeCrewRepo())

		_, err := svc.Summary(ctx, 1, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCrewHoursServiceListAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("list filters by pilot when one is given", func(t *testing.T) {
		svc := NewCrewHoursService(newFakeCrewRepo())

		_, err := svc.Create(ctx, 1, newCrewEntry(12, 1.5))
		require.NoError(t, err)
		_, err = svc.Create(ctx, 1, newCrewEntry(99, 2.0))
		require.NoError(t, err)

		mine, err := svc.List(ctx, 1, 12)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		all, err := svc.List(ctx, 1, 0)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("delete removes the entry from the total", func(t *testing.T) {
		svc := NewCrewHoursService(newFakeCrewRepo())

		entry, err := svc.Create(ctx, 1, newCrewEntry(12, 1.5))
		require.NoError(t, err)
		_, err = svc.Create(ctx, 1, newCrewEntry(12, 2.0))
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, 1, entry.ID))

		summary, err := svc.Summary(ctx, 1, 12)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Entries)
		assert.InDelta(t, 2.0, summary.TotalHours, 0.001)
	})

	t.Run("unknown entry yields not found", func(t *testing.T) {
		svc := NewCrewHoursService(newFakeCrewRepo())

		err := svc.Delete(ctx, 1, 55)
		assert.ErrorIs(t, err, ErrCrewEntryNotFound)
	})
}
