package services

import (
	"context"

	appauth "github.com/lucasmt/monitoria/internal/app/auth"
	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/app/repositories"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// GradeService defines the interface for grade record operations
type GradeService interface {
	ListGradesByStudent(ctx context.Context, p appauth.Principal, studentID int64) ([]*models.Grade, error)
	CreateGrade(ctx context.Context, p appauth.Principal, req dto.CreateGradeRequest) (*models.Grade, error)
	UpdateGrade(ctx context.Context, p appauth.Principal, id int64, req dto.UpdateGradeRequest) error
	DeleteGrade(ctx context.Context, p appauth.Principal, id int64) error
}

// gradeServiceImpl implements the GradeService interface
type gradeServiceImpl struct {
	gradeRepo *repositories.GradeRepository
	authz     *appauth.AuthorizationService
	logger    zerolog.Logger
}

// NewGradeService creates a new grade service instance
func NewGradeService(
	gradeRepo *repositories.GradeRepository,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) GradeService {
	return &gradeServiceImpl{
		gradeRepo: gradeRepo,
		authz:     authz,
		logger:    logger,
	}
}

func validateGradeValue(value *float64) (float64, error) {
	if value == nil {
		return 0, apperrors.Validation("value", "cannot be empty")
	}
	return *value, nil
}

// ListGradesByStudent returns a student's grades, newest first. The student
// itself is resolved under the caller's scope first.
func (s *gradeServiceImpl) ListGradesByStudent(ctx context.Context, p appauth.Principal, studentID int64) ([]*models.Grade, error) {
	if _, err := s.authz.ResolveStudent(ctx, p, studentID); err != nil {
		return nil, err
	}

	return s.gradeRepo.ListByStudent(ctx, studentID, p.SchoolScope())
}

// CreateGrade records a grade. The school reference is copied from the
// resolved student, never taken from the client.
func (s *gradeServiceImpl) CreateGrade(ctx context.Context, p appauth.Principal, req dto.CreateGradeRequest) (*models.Grade, error) {
	value, err := validateGradeValue(req.Value)
	if err != nil {
		return nil, err
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	student, err := s.authz.ResolveStudent(ctx, p, req.StudentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.authz.ResolveSubject(ctx, p, req.SubjectID); err != nil {
		return nil, err
	}

	grade := &models.Grade{
		StudentID: student.ID,
		SubjectID: req.SubjectID,
		Value:     value,
		Date:      date,
		SchoolID:  student.SchoolID,
	}

	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// UpdateGrade changes the numeric value of a grade inside the caller's scope.
func (s *gradeServiceImpl) UpdateGrade(ctx context.Context, p appauth.Principal, id int64, req dto.UpdateGradeRequest) error {
	value, err := validateGradeValue(req.Value)
	if err != nil {
		return err
	}

	if _, err := s.authz.ResolveGrade(ctx, p, id); err != nil {
		return err
	}

	return s.gradeRepo.UpdateValue(ctx, id, value)
}

// DeleteGrade removes a grade after the scope check.
func (s *gradeServiceImpl) DeleteGrade(ctx context.Context, p appauth.Principal, id int64) error {
	if _, err := s.authz.ResolveGrade(ctx, p, id); err != nil {
		return err
	}

	return s.gradeRepo.Delete(ctx, id)
}
