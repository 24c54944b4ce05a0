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

// ErrCrewEntryNotFound is returned when no ledger entry exists for an id
var ErrCrewEntryNotFound = errors.New("crew hours entry not found")

// crewHoursStore is the slice of the ledger repository the service needs
type crewHoursStore interface {
	Create(ctx context.Context, entry *models.CrewHoursEntry) error
	GetByID(ctx context.Context, id uint) (*models.CrewHoursEntry, error)
	List(ctx context.Context) ([]*models.CrewHoursEntry, error)
	ListByPilot(ctx context.Context, pilotID uint) ([]*models.CrewHoursEntry, error)
	SumByPilot(ctx context.Context, pilotID uint) (float64, error)
	Update(ctx context.Context, entry *models.CrewHoursEntry) error
	Delete(ctx context.Context, id uint) error
}

var _ crewHoursStore = (*repositories.CrewHoursRepository)(nil)

// CrewHoursService maintains the crew flight-hour ledger
type CrewHoursService struct {
	repo crewHoursStore
}

// NewCrewHoursService creates a new crew hours service
func NewCrewHoursService(repo crewHoursStore) *CrewHoursService {
	return &CrewHoursService{repo: repo}
}

// CrewHoursInput represents one ledger entry
type CrewHoursInput struct {
	PilotID              uint    `json:"pilot_id" validate:"required"`
	PilotName            string  `json:"pilot_name,omitempty"`
	AircraftRegistration string  `json:"aircraft_registration" validate:"required"`
	FlightDate           string  `json:"flight_date" validate:"required"`
	Hours                float64 `json:"hours" validate:"required,gt=0"`
	CrewRole             string  `json:"crew_role,omitempty"`
	Notes                string  `json:"notes,omitempty"`
}

// PilotHoursSummary aggregates a pilot's logged hours
type PilotHoursSummary struct {
	PilotID    uint    `json:"pilot_id"`
	TotalHours float64 `json:"total_hours"`
	Entries    int     `json:"entries"`
}

// Create appends a ledger entry
func (s *CrewHoursService) Create(ctx context.Context, actorID uint, input *CrewHoursInput) (*models.CrewHoursEntry, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if input.PilotID == 0 {
		return nil, fmt.Errorf("%w: pilot id is required", domain.ErrInvalidInput)
	}
	if input.AircraftRegistration == "" || input.FlightDate == "" {
		return nil, fmt.Errorf("%w: aircraft registration and flight date are required", domain.ErrInvalidInput)
	}
	if input.Hours <= 0 {
		return nil, fmt.Errorf("%w: hours must be positive", domain.ErrInvalidInput)
	}

	crewRole := input.CrewRole
	if crewRole == "" {
		crewRole = "pilot"
	}

	entry := &models.CrewHoursEntry{
		PilotID:              input.PilotID,
		PilotName:            input.PilotName,
		AircraftRegistration: input.AircraftRegistration,
		FlightDate:           input.FlightDate,
		Hours:                input.Hours,
		CrewRole:             crewRole,
		Notes:                input.Notes,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, storeErr(err)
	}
	return entry, nil
}

// Get gets a ledger entry by ID
func (s *CrewHoursService) Get(ctx context.Context, actorID, entryID uint) (*models.CrewHoursEntry, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	return s.getEntry(ctx, entryID)
}

// List lists ledger entries, optionally restricted to one pilot
func (s *CrewHoursService) List(ctx context.Context, actorID, pilotID uint) ([]*models.CrewHoursEntry, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if pilotID != 0 {
		entries, err := s.repo.ListByPilot(ctx, pilotID)
		if err != nil {
			return nil, storeErr(err)
		}
		return entries, nil
	}
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

// Summary totals a pilot's logged hours
func (s *CrewHoursService) Summary(ctx context.Context, actorID, pilotID uint) (*PilotHoursSummary, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if pilotID == 0 {
		return nil, fmt.Errorf("%w: pilot id is required", domain.ErrInvalidInput)
	}

	entries, err := s.repo.ListByPilot(ctx, pilotID)
	if err != nil {
		return nil, storeErr(err)
	}
	total, err := s.repo.SumByPilot(ctx, pilotID)
	if err != nil {
		return nil, storeErr(err)
	}

	return &PilotHoursSummary{
		PilotID:    pilotID,
		TotalHours: total,
		Entries:    len(entries),
	}, nil
}

// Update replaces the mutable fields of a ledger entry
func (s *CrewHoursService) Update(ctx context.Context, actorID, entryID uint, input *CrewHoursInput) (*models.CrewHoursEntry, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	entry, err := s.getEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if input.PilotID != 0 {
		entry.PilotID = input.PilotID
	}
	if input.PilotName != "" {
		entry.PilotName = input.PilotName
	}
	if input.AircraftRegistration != "" {
		entry.AircraftRegistration = input.AircraftRegistration
	}
	if input.FlightDate != "" {
		entry.FlightDate = input.FlightDate
	}
	if input.Hours > 0 {
		entry.Hours = input.Hours
	}
	if input.CrewRole != "" {
		entry.CrewRole = input.CrewRole
	}
	if input.Notes != "" {
		entry.Notes = input.Notes
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, storeErr(err)
	}
	return entry, nil
}

// Delete removes a ledger entry
func (s *CrewHoursService) Delete(ctx context.Context, actorID, entryID uint) error {
	if actorID == 0 {
		return domain.ErrUnauthenticated
	}
	if _, err := s.getEntry(ctx, entryID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, entryID); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *CrewHoursService) getEntry(ctx context.Context, id uint) (*models.CrewHoursEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCrewEntryNotFound
		}
		return nil, storeErr(err)
	}
	return entry, nil
}
