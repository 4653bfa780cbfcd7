package services

import (
	"context"
	"strings"

	appauth "github.com/lucasmt/monitoria/internal/app/auth"
	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/app/repositories"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
	"github.com/lucasmt/monitoria/internal/pkg/credentials"
	"github.com/rs/zerolog"
)

// MonitorService defines the interface for staff-account operations. Every
// operation, including reads, is reserved for administrators.
type MonitorService interface {
	ListMonitors(ctx context.Context, p appauth.Principal) ([]*models.Monitor, error)
	CreateMonitor(ctx context.Context, p appauth.Principal, req dto.CreateMonitorRequest) (*models.Monitor, error)
	UpdateMonitor(ctx context.Context, p appauth.Principal, id int64, req dto.UpdateMonitorRequest) error
	DeleteMonitor(ctx context.Context, p appauth.Principal, id int64) error
}

// monitorServiceImpl implements the MonitorService interface
type monitorServiceImpl struct {
	monitorRepo *repositories.MonitorRepository
	schoolRepo  *repositories.SchoolRepository
	authz       *appauth.AuthorizationService
	logger      zerolog.Logger
}

// NewMonitorService creates a new monitor service instance
func NewMonitorService(
	monitorRepo *repositories.MonitorRepository,
	schoolRepo *repositories.SchoolRepository,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) MonitorService {
	return &monitorServiceImpl{
		monitorRepo: monitorRepo,
		schoolRepo:  schoolRepo,
		authz:       authz,
		logger:      logger,
	}
}

// validateAccount checks the fields shared by create and update.
func (s *monitorServiceImpl) validateAccount(name, nationalID, role string, schoolID *int64) (models.Role, error) {
	if strings.TrimSpace(name) == "" {
		return "", apperrors.Validation("name", "cannot be empty")
	}
	if strings.TrimSpace(nationalID) == "" {
		return "", apperrors.Validation("nationalId", "cannot be empty")
	}

	roleTag := models.Role(role)
	if !roleTag.Valid() {
		return "", apperrors.Validation("role", `must be "admin" or "monitor"`)
	}

	// The account invariant: a non-admin monitor is always bound to a school
	if roleTag == models.RoleMonitor && schoolID == nil {
		return "", apperrors.ErrMonitorNeedsSchool
	}

	return roleTag, nil
}

// schoolMustExist verifies the referenced school before a write.
func (s *monitorServiceImpl) schoolMustExist(ctx context.Context, schoolID *int64) error {
	if schoolID == nil {
		return nil
	}
	exists, err := s.schoolRepo.Exists(ctx, *schoolID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !exists {
		return apperrors.ErrSchoolNotInScope
	}
	return nil
}

// ListMonitors returns every staff account with its school name.
func (s *monitorServiceImpl) ListMonitors(ctx context.Context, p appauth.Principal) ([]*models.Monitor, error) {
	if err := s.authz.RequireAdmin(p); err != nil {
		return nil, err
	}

	return s.monitorRepo.GetAll(ctx)
}

// CreateMonitor registers a staff account with a freshly hashed credential.
func (s *monitorServiceImpl) CreateMonitor(ctx context.Context, p appauth.Principal, req dto.CreateMonitorRequest) (*models.Monitor, error) {
	if err := s.authz.RequireAdmin(p); err != nil {
		return nil, err
	}

	roleTag, err := s.validateAccount(req.Name, req.NationalID, req.Role, req.SchoolID)
	if err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, apperrors.Validation("password", "cannot be empty")
	}
	if err := s.schoolMustExist(ctx, req.SchoolID); err != nil {
		return nil, err
	}

	hash, err := credentials.Hash(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing monitor password")
		return nil, apperrors.Internal(err)
	}

	monitor := &models.Monitor{
		Name:         req.Name,
		NationalID:   req.NationalID,
		Role:         roleTag,
		SchoolID:     req.SchoolID,
		PasswordHash: hash,
	}

	if err := s.monitorRepo.Create(ctx, monitor); err != nil {
		return nil, err
	}
	return monitor, nil
}

// UpdateMonitor updates a staff account. The credential is re-hashed only
// when a new password is supplied.
func (s *monitorServiceImpl) UpdateMonitor(ctx context.Context, p appauth.Principal, id int64, req dto.UpdateMonitorRequest) error {
	if err := s.authz.RequireAdmin(p); err != nil {
		return err
	}

	roleTag, err := s.validateAccount(req.Name, req.NationalID, req.Role, req.SchoolID)
	if err != nil {
		return err
	}
	if err := s.schoolMustExist(ctx, req.SchoolID); err != nil {
		return err
	}

	monitor := &models.Monitor{
		ID:         id,
		Name:       req.Name,
		NationalID: req.NationalID,
		Role:       roleTag,
		SchoolID:   req.SchoolID,
	}

	if req.Password != "" {
		hash, err := credentials.Hash(req.Password)
		if err != nil {
			s.logger.Error().Err(err).Msg("Error hashing monitor password")
			return apperrors.Internal(err)
		}
		monitor.PasswordHash = hash
	}

	return s.monitorRepo.Update(ctx, monitor)
}

// DeleteMonitor deletes a staff account.
func (s *monitorServiceImpl) DeleteMonitor(ctx context.Context, p appauth.Principal, id int64) error {
	if err := s.authz.RequireAdmin(p); err != nil {
		return err
	}

	return s.monitorRepo.Delete(ctx, id)
}
