package services

import (
	"context"

	appauth "github.com/lucasmt/monitoria/internal/app/auth"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/app/repositories"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// DashboardService defines the interface for summary statistics
type DashboardService interface {
	GetStats(ctx context.Context, p appauth.Principal) (*dto.DashboardStats, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	statsRepo *repositories.StatsRepository
	logger    zerolog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(statsRepo *repositories.StatsRepository, logger zerolog.Logger) DashboardService {
	return &dashboardServiceImpl{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// GetStats returns entity counts restricted to the caller's scope. The
// school count is only meaningful for administrators; monitors see zero.
func (s *dashboardServiceImpl) GetStats(ctx context.Context, p appauth.Principal) (*dto.DashboardStats, error) {
	scope := p.SchoolScope()

	students, err := s.statsRepo.CountStudents(ctx, scope)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	monitors, err := s.statsRepo.CountMonitors(ctx, scope)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	var schools int64
	if p.IsAdmin() {
		schools, err = s.statsRepo.CountSchools(ctx)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	return &dto.DashboardStats{
		TotalStudents: students,
		TotalMonitors: monitors,
		TotalSchools:  schools,
	}, nil
}
