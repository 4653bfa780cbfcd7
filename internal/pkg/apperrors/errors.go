package apperrors

import (
	"errors"
	"fmt"
)

// Error categories. Every failure surfaced to a caller belongs to exactly
// one of these; handlers map them to HTTP status codes.
var (
	// ErrUnauthenticated means no valid session accompanied the request.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrValidationFailed means a required field was missing or malformed.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotInScope covers both "row does not exist" and "row exists but
	// belongs to another school". Keeping them indistinguishable avoids
	// leaking row existence across tenants.
	ErrNotInScope = errors.New("not found or not in scope")

	// ErrConflict means a uniqueness or referential rule was violated.
	ErrConflict = errors.New("conflict")

	// ErrPermissionDenied means the operation is reserved for administrators.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInternal is the generic category for unexpected storage failures.
	ErrInternal = errors.New("internal error")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenExpired       = errors.New("session expired")
	ErrTokenInvalid       = errors.New("invalid session token")
)

// School errors
var (
	ErrSchoolNotInScope = fmt.Errorf("%w: school", ErrNotInScope)
)

// Monitor errors
var (
	ErrMonitorNotInScope  = fmt.Errorf("%w: monitor", ErrNotInScope)
	ErrNationalIDExists   = fmt.Errorf("%w: a monitor with this national ID already exists", ErrConflict)
	ErrMonitorNeedsSchool = fmt.Errorf("%w: a non-admin monitor must be assigned to a school", ErrValidationFailed)
)

// Student errors
var (
	ErrStudentNotInScope   = fmt.Errorf("%w: student", ErrNotInScope)
	ErrStudentNumberExists = fmt.Errorf("%w: a student with this number already exists in this school", ErrConflict)
)

// Subject errors
var (
	ErrSubjectNotInScope = fmt.Errorf("%w: subject", ErrNotInScope)
	ErrSubjectInUse      = fmt.Errorf("%w: subject is referenced by observations and cannot be deleted", ErrConflict)
)

// Grade and observation errors
var (
	ErrGradeNotInScope       = fmt.Errorf("%w: grade", ErrNotInScope)
	ErrObservationNotInScope = fmt.Errorf("%w: observation", ErrNotInScope)
)

// Validation creates a field-level validation error.
func Validation(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidationFailed, field, reason)
}

// Internal wraps an unexpected storage or infrastructure failure. The cause
// stays attached for server-side logging but callers only ever see the
// generic category message.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
