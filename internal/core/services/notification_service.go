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

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("notification belongs to another recipient")
)

// NotificationService persists lifecycle notifications. Records are
// append-only; only the read flag ever changes afterwards.
type NotificationService struct {
	repo repositories.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotifyNewRequest records a new_request notification for the coordinator role
func (s *NotificationService) NotifyNewRequest(ctx context.Context, request *models.FlightRequest) error {
	return s.repo.Create(ctx, &models.Notification{
		Type:  domain.NotifyNewRequest,
		Title: "Nova solicitação de voo",
		Message: fmt.Sprintf("%s solicitou um voo %s → %s em %s (%d passageiros)",
			request.RequesterName, request.Origin, request.Destination,
			request.FlightDate, request.Passengers),
		FlightRequestID: &request.ID,
		RecipientRole:   domain.RoleCoordinator,
	})
}

// NotifyFlightScheduled records a flight_scheduled notification for the requester
func (s *NotificationService) NotifyFlightScheduled(ctx context.Context, request *models.FlightRequest, plan *models.FlightPlan) error {
	return s.repo.Create(ctx, &models.Notification{
		Type:  domain.NotifyFlightScheduled,
		Title: "Voo agendado",
		Message: fmt.Sprintf("Seu voo %s → %s foi agendado para %s às %s",
			plan.Origin, plan.Destination, plan.FlightDate, plan.DepartureTime),
		FlightRequestID: &request.ID,
		FlightPlanID:    &plan.ID,
		RecipientRole:   domain.RoleRequester,
		RecipientID:     &request.RequesterID,
	})
}

// NotifyFlightCompleted records a flight_completed notification for the requester
func (s *NotificationService) NotifyFlightCompleted(ctx context.Context, request *models.FlightRequest, plan *models.FlightPlan) error {
	return s.repo.Create(ctx, &models.Notification{
		Type:  domain.NotifyFlightCompleted,
		Title: "Voo concluído",
		Message: fmt.Sprintf("Seu voo %s → %s de %s foi concluído",
			plan.Origin, plan.Destination, plan.FlightDate),
		FlightRequestID: &request.ID,
		FlightPlanID:    &plan.ID,
		RecipientRole:   domain.RoleRequester,
		RecipientID:     &request.RequesterID,
	})
}

// NotifyFlightCancelled records a flight_cancelled notification for the requester
func (s *NotificationService) NotifyFlightCancelled(ctx context.Context, request *models.FlightRequest) error {
	return s.repo.Create(ctx, &models.Notification{
		Type:  domain.NotifyFlightCancelled,
		Title: "Voo cancelado",
		Message: fmt.Sprintf("Seu voo %s → %s de %s foi cancelado",
			request.Origin, request.Destination, request.FlightDate),
		FlightRequestID: &request.ID,
		RecipientRole:   domain.RoleRequester,
		RecipientID:     &request.RequesterID,
	})
}

// ListForRecipient lists notifications for the acting user in a role
func (s *NotificationService) ListForRecipient(ctx context.Context, actorID uint, role domain.Role) ([]*models.Notification, error) {
	if actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	notifications, err := s.repo.ListByRecipient(ctx, role, actorID)
	if err != nil {
		return nil, storeErr(err)
	}
	return notifications, nil
}

// MarkRead sets the read flag on one of the acting user's notifications.
// Role-wide notifications (no recipient id) can be marked by anyone in the
// role, so only an explicit other-recipient id is rejected.
func (s *NotificationService) MarkRead(ctx context.Context, actorID, notificationID uint) error {
	if actorID == 0 {
		return domain.ErrUnauthenticated
	}

	notification, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return storeErr(err)
	}

	if notification.RecipientID != nil && *notification.RecipientID != actorID {
		return ErrNotRecipient
	}

	if err := s.repo.MarkRead(ctx, notificationID); err != nil {
		return storeErr(err)
	}
	return nil
}
