package auth

import (
	"context"

	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/app/repositories"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
)

// AuthorizationService resolves target rows under a principal's scope
// before any write. Resolution failures collapse "does not exist" and
// "exists in another school" into the same error.
type AuthorizationService struct {
	studentRepo     *repositories.StudentRepository
	subjectRepo     *repositories.SubjectRepository
	gradeRepo       *repositories.GradeRepository
	observationRepo *repositories.ObservationRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(
	studentRepo *repositories.StudentRepository,
	subjectRepo *repositories.SubjectRepository,
	gradeRepo *repositories.GradeRepository,
	observationRepo *repositories.ObservationRepository,
) *AuthorizationService {
	return &AuthorizationService{
		studentRepo:     studentRepo,
		subjectRepo:     subjectRepo,
		gradeRepo:       gradeRepo,
		observationRepo: observationRepo,
	}
}

// ResolveStudent returns the student iff it is visible to the principal.
func (s *AuthorizationService) ResolveStudent(ctx context.Context, p Principal, studentID int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, studentID, p.SchoolScope())
}

// ResolveSubject returns the subject iff it is visible to the principal.
func (s *AuthorizationService) ResolveSubject(ctx context.Context, p Principal, subjectID int64) (*models.Subject, error) {
	return s.subjectRepo.GetByID(ctx, subjectID, p.SchoolScope())
}

// ResolveGrade returns the grade iff it is visible to the principal. The
// check uses the grade's denormalized school reference.
func (s *AuthorizationService) ResolveGrade(ctx context.Context, p Principal, gradeID int64) (*models.Grade, error) {
	return s.gradeRepo.GetByID(ctx, gradeID, p.SchoolScope())
}

// ResolveObservation returns the observation iff its parent student is
// visible to the principal.
func (s *AuthorizationService) ResolveObservation(ctx context.Context, p Principal, observationID int64) (*models.Observation, error) {
	return s.observationRepo.GetByID(ctx, observationID, p.SchoolScope())
}

// RequireAdmin rejects non-administrator principals. Monitor accounts are
// managed exclusively by administrators, including a monitor's own record.
func (s *AuthorizationService) RequireAdmin(p Principal) error {
	if !p.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
