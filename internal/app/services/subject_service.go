package services

import (
	"context"
	"strings"

	appauth "github.com/lucasmt/monitoria/internal/app/auth"
	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/app/repositories"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// SubjectService defines the interface for subject catalog operations
type SubjectService interface {
	ListSubjects(ctx context.Context, p appauth.Principal, schoolID *int64) ([]*models.Subject, error)
	CreateSubject(ctx context.Context, p appauth.Principal, req dto.CreateSubjectRequest) (*models.Subject, error)
	UpdateSubject(ctx context.Context, p appauth.Principal, id int64, req dto.UpdateSubjectRequest) error
	DeleteSubject(ctx context.Context, p appauth.Principal, id int64) error
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjectRepo *repositories.SubjectRepository
	schoolRepo  *repositories.SchoolRepository
	authz       *appauth.AuthorizationService
	logger      zerolog.Logger
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(
	subjectRepo *repositories.SubjectRepository,
	schoolRepo *repositories.SchoolRepository,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) SubjectService {
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
		schoolRepo:  schoolRepo,
		authz:       authz,
		logger:      logger,
	}
}

// adminSchoolFilter returns the explicit school filter for administrators.
// For monitors the parameter is ignored; their home-school scope already
// fixes the visible school, and honoring a foreign filter would only ever
// produce an empty list.
func adminSchoolFilter(p appauth.Principal, schoolID *int64) *int64 {
	if !p.IsAdmin() {
		return nil
	}
	return schoolID
}

// ListSubjects returns the subjects visible to the caller, optionally
// narrowed to a single school. The explicit filter is honored for
// administrators only.
func (s *subjectServiceImpl) ListSubjects(ctx context.Context, p appauth.Principal, schoolID *int64) ([]*models.Subject, error) {
	return s.subjectRepo.List(ctx, p.SchoolScope(), adminSchoolFilter(p, schoolID))
}

// CreateSubject registers a subject for a school the caller can access.
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, p appauth.Principal, req dto.CreateSubjectRequest) (*models.Subject, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("name", "cannot be empty")
	}

	if !p.CanAccessSchool(req.SchoolID) {
		return nil, apperrors.ErrPermissionDenied
	}

	exists, err := s.schoolRepo.Exists(ctx, req.SchoolID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if !exists {
		return nil, apperrors.ErrSchoolNotInScope
	}

	subject := &models.Subject{
		Name:     req.Name,
		SchoolID: req.SchoolID,
	}

	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// UpdateSubject renames a subject inside the caller's scope.
func (s *subjectServiceImpl) UpdateSubject(ctx context.Context, p appauth.Principal, id int64, req dto.UpdateSubjectRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.Validation("name", "cannot be empty")
	}

	if _, err := s.authz.ResolveSubject(ctx, p, id); err != nil {
		return err
	}

	return s.subjectRepo.UpdateName(ctx, id, req.Name)
}

// DeleteSubject removes a subject unless an observation still references it
// by name.
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, p appauth.Principal, id int64) error {
	subject, err := s.authz.ResolveSubject(ctx, p, id)
	if err != nil {
		return err
	}

	return s.subjectRepo.Delete(ctx, id, subject.Name)
}
