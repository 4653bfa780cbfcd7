package auth

import (
	"errors"
	"testing"

	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
)

func adminPrincipal() Principal {
	return Principal{ID: 1, Name: "admin", Role: models.RoleAdmin}
}

func monitorPrincipal(schoolID int64) Principal {
	return Principal{ID: 2, Name: "maria", Role: models.RoleMonitor, SchoolID: &schoolID}
}

func TestAdminScopeIsUnrestricted(t *testing.T) {
	p := adminPrincipal()

	if !p.IsAdmin() {
		t.Fatalf("expected admin role")
	}
	if p.SchoolScope() != nil {
		t.Fatalf("expected nil scope for admin")
	}
	if !p.CanAccessSchool(1) || !p.CanAccessSchool(99) {
		t.Fatalf("admin must access any school")
	}
}

func TestMonitorScopeIsHomeSchool(t *testing.T) {
	p := monitorPrincipal(3)

	scope := p.SchoolScope()
	if scope == nil || *scope != 3 {
		t.Fatalf("expected scope 3, got %v", scope)
	}
	if !p.CanAccessSchool(3) {
		t.Fatalf("monitor must access own school")
	}
	if p.CanAccessSchool(4) {
		t.Fatalf("monitor must not access another school")
	}
}

func TestTargetSchoolAdminRequiresExplicitSchool(t *testing.T) {
	p := adminPrincipal()

	if _, err := p.TargetSchool(nil); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}

	requested := int64(7)
	id, err := p.TargetSchool(&requested)
	if err != nil || id != 7 {
		t.Fatalf("expected school 7, got %d, %v", id, err)
	}
}

func TestTargetSchoolMonitorIsForcedHome(t *testing.T) {
	p := monitorPrincipal(3)

	// The requested school is ignored entirely for monitors
	requested := int64(9)
	id, err := p.TargetSchool(&requested)
	if err != nil || id != 3 {
		t.Fatalf("expected home school 3, got %d, %v", id, err)
	}

	id, err = p.TargetSchool(nil)
	if err != nil || id != 3 {
		t.Fatalf("expected home school 3 without a request, got %d, %v", id, err)
	}
}

func TestTargetSchoolMonitorWithoutHomeSchool(t *testing.T) {
	p := Principal{ID: 2, Name: "broken", Role: models.RoleMonitor}

	if _, err := p.TargetSchool(nil); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}
