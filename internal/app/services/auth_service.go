package services

import (
	"context"
	"errors"
	"strings"

	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/app/repositories"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
	"github.com/lucasmt/monitoria/internal/pkg/auth"
	"github.com/lucasmt/monitoria/internal/pkg/credentials"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Monitor, string, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	monitorRepo    *repositories.MonitorRepository
	sessionService *auth.SessionService
	logger         zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(monitorRepo *repositories.MonitorRepository, sessionService *auth.SessionService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		monitorRepo:    monitorRepo,
		sessionService: sessionService,
		logger:         logger,
	}
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords produce the same error.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.Monitor, string, error) {
	if strings.TrimSpace(username) == "" {
		return nil, "", apperrors.Validation("username", "cannot be empty")
	}
	if password == "" {
		return nil, "", apperrors.Validation("password", "cannot be empty")
	}

	monitor, err := s.monitorRepo.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("username", username).Msg("Error looking up account during login")
		return nil, "", apperrors.Internal(err)
	}

	if !credentials.Verify(password, monitor.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessionService.Issue(monitor.ID, monitor.Name, string(monitor.Role), monitor.SchoolID)
	if err != nil {
		s.logger.Error().Err(err).Int64("monitorID", monitor.ID).Msg("Error issuing session token")
		return nil, "", apperrors.Internal(err)
	}

	return monitor, token, nil
}
