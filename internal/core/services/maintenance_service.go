package services

import (
	"context"
	"time"

	"sharebrasil-ops/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaintenanceService runs scheduled housekeeping jobs
type MaintenanceService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	cron             *cron.Cron
	log              *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(db *gorm.DB, log *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		refreshTokenRepo: repositories.NewRefreshTokenRepository(db),
		cron:             cron.New(),
		log:              log,
	}
}

// Start schedules the housekeeping jobs and runs the scheduler
func (s *MaintenanceService) Start() {
	// expired refresh tokens, nightly at 03:00
	if _, err := s.cron.AddFunc("0 3 * * *", s.purgeExpiredRefreshTokens); err != nil {
		s.log.Error("failed to schedule refresh token purge", zap.Error(err))
	}
	s.cron.Start()
	s.log.Info("maintenance scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *MaintenanceService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("maintenance scheduler stopped")
}

func (s *MaintenanceService) purgeExpiredRefreshTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.refreshTokenRepo.DeleteExpired(ctx); err != nil {
		s.log.Warn("refresh token purge failed", zap.Error(err))
		return
	}
	s.log.Info("expired refresh tokens purged")
}
