package services

import (
	"context"
	"strings"

	appauth "github.com/lucasmt/monitoria/internal/app/auth"
	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/app/repositories"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
)

// SchoolService defines the interface for school operations
type SchoolService interface {
	ListSchools(ctx context.Context, p appauth.Principal) ([]*models.School, error)
	CreateSchool(ctx context.Context, p appauth.Principal, name string) (*models.School, error)
	UpdateSchool(ctx context.Context, p appauth.Principal, id int64, name string) error
	DeleteSchool(ctx context.Context, p appauth.Principal, id int64) error
}

// schoolServiceImpl implements the SchoolService interface
type schoolServiceImpl struct {
	schoolRepo *repositories.SchoolRepository
	authz      *appauth.AuthorizationService
}

// NewSchoolService creates a new school service instance
func NewSchoolService(schoolRepo *repositories.SchoolRepository, authz *appauth.AuthorizationService) SchoolService {
	return &schoolServiceImpl{
		schoolRepo: schoolRepo,
		authz:      authz,
	}
}

// ListSchools returns every school for administrators, or just the home
// school for monitors.
func (s *schoolServiceImpl) ListSchools(ctx context.Context, p appauth.Principal) ([]*models.School, error) {
	return s.schoolRepo.GetAll(ctx, p.SchoolScope())
}

// CreateSchool registers a new school. Administrators only.
func (s *schoolServiceImpl) CreateSchool(ctx context.Context, p appauth.Principal, name string) (*models.School, error) {
	if err := s.authz.RequireAdmin(p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("name", "cannot be empty")
	}

	school := &models.School{Name: name}
	if err := s.schoolRepo.Create(ctx, school); err != nil {
		return nil, err
	}
	return school, nil
}

// UpdateSchool renames a school. Administrators only.
func (s *schoolServiceImpl) UpdateSchool(ctx context.Context, p appauth.Principal, id int64, name string) error {
	if err := s.authz.RequireAdmin(p); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return apperrors.Validation("name", "cannot be empty")
	}

	return s.schoolRepo.Update(ctx, &models.School{ID: id, Name: name})
}

// DeleteSchool deletes a school. Administrators only.
func (s *schoolServiceImpl) DeleteSchool(ctx context.Context, p appauth.Principal, id int64) error {
	if err := s.authz.RequireAdmin(p); err != nil {
		return err
	}

	return s.schoolRepo.Delete(ctx, id)
}
