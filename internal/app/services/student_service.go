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

// StudentService defines the interface for student roster operations
type StudentService interface {
	ListStudents(ctx context.Context, p appauth.Principal, filter dto.StudentFilter) ([]*models.Student, error)
	GetStudent(ctx context.Context, p appauth.Principal, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, p appauth.Principal, req dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, p appauth.Principal, id int64, req dto.UpdateStudentRequest) error
	DeleteStudent(ctx context.Context, p appauth.Principal, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	schoolRepo  *repositories.SchoolRepository
	authz       *appauth.AuthorizationService
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	schoolRepo *repositories.SchoolRepository,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		schoolRepo:  schoolRepo,
		authz:       authz,
		logger:      logger,
	}
}

func validateStudentFields(name, number, classLabel string, year int) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.Validation("name", "cannot be empty")
	}
	if strings.TrimSpace(number) == "" {
		return apperrors.Validation("number", "cannot be empty")
	}
	if strings.TrimSpace(classLabel) == "" {
		return apperrors.Validation("classLabel", "cannot be empty")
	}
	if year <= 0 {
		return apperrors.Validation("year", "must be a positive year")
	}
	return nil
}

// ListStudents returns the students visible to the caller, narrowed by the
// optional class, year and name filters.
func (s *studentServiceImpl) ListStudents(ctx context.Context, p appauth.Principal, filter dto.StudentFilter) ([]*models.Student, error) {
	return s.studentRepo.List(ctx, p.SchoolScope(), filter)
}

// GetStudent returns a single student when it falls inside the caller's scope.
func (s *studentServiceImpl) GetStudent(ctx context.Context, p appauth.Principal, id int64) (*models.Student, error) {
	return s.authz.ResolveStudent(ctx, p, id)
}

// CreateStudent enrolls a student. Administrators name the school explicitly;
// monitors always enroll into their home school.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, p appauth.Principal, req dto.CreateStudentRequest) (*models.Student, error) {
	if err := validateStudentFields(req.Name, req.Number, req.ClassLabel, req.Year); err != nil {
		return nil, err
	}

	schoolID, err := p.TargetSchool(req.SchoolID)
	if err != nil {
		return nil, err
	}

	exists, err := s.schoolRepo.Exists(ctx, schoolID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if !exists {
		return nil, apperrors.ErrSchoolNotInScope
	}

	student := &models.Student{
		Name:       req.Name,
		Number:     req.Number,
		ClassLabel: req.ClassLabel,
		Year:       req.Year,
		SchoolID:   schoolID,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateStudent updates a student's mutable fields. The school affiliation
// is never changed here.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, p appauth.Principal, id int64, req dto.UpdateStudentRequest) error {
	if err := validateStudentFields(req.Name, req.Number, req.ClassLabel, req.Year); err != nil {
		return err
	}

	existing, err := s.authz.ResolveStudent(ctx, p, id)
	if err != nil {
		return err
	}

	student := &models.Student{
		ID:         existing.ID,
		Name:       req.Name,
		Number:     req.Number,
		ClassLabel: req.ClassLabel,
		Year:       req.Year,
		SchoolID:   existing.SchoolID,
	}

	return s.studentRepo.Update(ctx, student)
}

// DeleteStudent removes a student after the scope check.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, p appauth.Principal, id int64) error {
	if _, err := s.authz.ResolveStudent(ctx, p, id); err != nil {
		return err
	}

	return s.studentRepo.Delete(ctx, id)
}
