package repositories

import (
	"context"

	"sharebrasil-ops/internal/adapters/persistence/models"
	"sharebrasil-ops/internal/core/domain"
)

// FlightRequestRepository defines flight request repository interface
type FlightRequestRepository interface {
	Create(ctx context.Context, request *models.FlightRequest) error
	GetByID(ctx context.Context, id uint) (*models.FlightRequest, error)
	List(ctx context.Context) ([]*models.FlightRequest, error)
	ListByRequester(ctx context.Context, requesterID uint) ([]*models.FlightRequest, error)
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]*models.FlightRequest, error)
	Update(ctx context.Context, request *models.FlightRequest) error
	Delete(ctx context.Context, id uint) error
}

// FlightPlanRepository defines flight plan repository interface
type FlightPlanRepository interface {
	Create(ctx context.Context, plan *models.FlightPlan) error
	GetByID(ctx context.Context, id uint) (*models.FlightPlan, error)
	GetByRequestID(ctx context.Context, requestID uint) (*models.FlightPlan, error)
	List(ctx context.Context) ([]*models.FlightPlan, error)
	Update(ctx context.Context, plan *models.FlightPlan) error
	Delete(ctx context.Context, id uint) error
}

// NotificationRepository defines notification repository interface
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	ListByRecipient(ctx context.Context, role domain.Role, recipientID uint) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uint) error
}

// HourlyRateRepository defines hourly rate repository interface
type HourlyRateRepository interface {
	Create(ctx context.Context, rate *models.HourlyRate) error
	GetByID(ctx context.Context, id uint) (*models.HourlyRate, error)
	List(ctx context.Context) ([]*models.HourlyRate, error)
	ListByRegistration(ctx context.Context, registration string) ([]*models.HourlyRate, error)
	Update(ctx context.Context, rate *models.HourlyRate) error
	Delete(ctx context.Context, id uint) error
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}
