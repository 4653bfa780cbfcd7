package auth

import (
	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
)

// Principal is the authenticated identity derived from a session token.
// SchoolID is the home-school affiliation; it is nil for administrators,
// who act across every school.
type Principal struct {
	ID       int64
	Name     string
	Role     models.Role
	SchoolID *int64
}

// IsAdmin reports whether the principal may act on rows of every school.
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// SchoolScope returns the school filter to apply to list queries: nil means
// unrestricted, otherwise only rows of that school are visible.
func (p Principal) SchoolScope() *int64 {
	if p.IsAdmin() {
		return nil
	}
	return p.SchoolID
}

// CanAccessSchool reports whether the principal may act on rows belonging
// to the given school.
func (p Principal) CanAccessSchool(schoolID int64) bool {
	if p.IsAdmin() {
		return true
	}
	return p.SchoolID != nil && *p.SchoolID == schoolID
}

// TargetSchool decides which school a new school-owned row is created in.
// An administrator must name the school explicitly; for a monitor the home
// school is used regardless of what the request carried.
func (p Principal) TargetSchool(requested *int64) (int64, error) {
	if p.IsAdmin() {
		if requested == nil {
			return 0, apperrors.Validation("schoolId", "is required")
		}
		return *requested, nil
	}

	if p.SchoolID == nil {
		// A monitor without a home school violates the account invariant;
		// treat it as an unusable session rather than guessing a school.
		return 0, apperrors.ErrPermissionDenied
	}
	return *p.SchoolID, nil
}
