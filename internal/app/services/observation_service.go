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

// ObservationService defines the interface for behavioral record operations
type ObservationService interface {
	ListObservationsByStudent(ctx context.Context, p appauth.Principal, studentID int64) ([]*models.Observation, error)
	CreateObservation(ctx context.Context, p appauth.Principal, req dto.CreateObservationRequest) (*models.Observation, error)
	UpdateObservation(ctx context.Context, p appauth.Principal, id int64, req dto.UpdateObservationRequest) error
	DeleteObservation(ctx context.Context, p appauth.Principal, id int64) error
}

// observationServiceImpl implements the ObservationService interface
type observationServiceImpl struct {
	observationRepo *repositories.ObservationRepository
	authz           *appauth.AuthorizationService
	logger          zerolog.Logger
}

// NewObservationService creates a new observation service instance
func NewObservationService(
	observationRepo *repositories.ObservationRepository,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) ObservationService {
	return &observationServiceImpl{
		observationRepo: observationRepo,
		authz:           authz,
		logger:          logger,
	}
}

func validateObservationFields(discipline, kind, description string) (models.ObservationKind, error) {
	if strings.TrimSpace(discipline) == "" {
		return "", apperrors.Validation("discipline", "cannot be empty")
	}

	kindTag := models.ObservationKind(kind)
	if !kindTag.Valid() {
		return "", apperrors.Validation("kind", `must be "positive" or "negative"`)
	}

	if strings.TrimSpace(description) == "" {
		return "", apperrors.Validation("description", "cannot be empty")
	}
	return kindTag, nil
}

// ListObservationsByStudent returns a student's observations, newest first.
// The student itself is resolved under the caller's scope first.
func (s *observationServiceImpl) ListObservationsByStudent(ctx context.Context, p appauth.Principal, studentID int64) ([]*models.Observation, error) {
	if _, err := s.authz.ResolveStudent(ctx, p, studentID); err != nil {
		return nil, err
	}

	return s.observationRepo.ListByStudent(ctx, studentID)
}

// CreateObservation records an observation against a student inside the
// caller's scope.
func (s *observationServiceImpl) CreateObservation(ctx context.Context, p appauth.Principal, req dto.CreateObservationRequest) (*models.Observation, error) {
	kindTag, err := validateObservationFields(req.Discipline, req.Kind, req.Description)
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

	observation := &models.Observation{
		StudentID:   student.ID,
		Date:        date,
		Discipline:  req.Discipline,
		Kind:        kindTag,
		Description: req.Description,
		Consequence: req.Consequence,
	}

	if err := s.observationRepo.Create(ctx, observation); err != nil {
		return nil, err
	}
	return observation, nil
}

// UpdateObservation updates an observation's mutable fields. The student
// reference is immutable after creation.
func (s *observationServiceImpl) UpdateObservation(ctx context.Context, p appauth.Principal, id int64, req dto.UpdateObservationRequest) error {
	kindTag, err := validateObservationFields(req.Discipline, req.Kind, req.Description)
	if err != nil {
		return err
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return err
	}

	existing, err := s.authz.ResolveObservation(ctx, p, id)
	if err != nil {
		return err
	}

	observation := &models.Observation{
		ID:          existing.ID,
		StudentID:   existing.StudentID,
		Date:        date,
		Discipline:  req.Discipline,
		Kind:        kindTag,
		Description: req.Description,
		Consequence: req.Consequence,
	}

	return s.observationRepo.Update(ctx, observation)
}

// DeleteObservation removes an observation after the scope check.
func (s *observationServiceImpl) DeleteObservation(ctx context.Context, p appauth.Principal, id int64) error {
	if _, err := s.authz.ResolveObservation(ctx, p, id); err != nil {
		return err
	}

	return s.observationRepo.Delete(ctx, id)
}
