package services

import (
	"errors"
	"testing"
	"time"

	appauth "github.com/lucasmt/monitoria/internal/app/auth"
	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
)

func TestParseDate(t *testing.T) {
	date, err := parseDate("date", "2024-05-10")
	if err != nil {
		t.Fatalf("parseDate returned error for valid input: %v", err)
	}
	want := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("parseDate = %v, want %v", date, want)
	}
}

func TestParseDateRejectsOtherFormats(t *testing.T) {
	for _, input := range []string{"", "10/05/2024", "2024-5-10", "2024-05-10T00:00:00Z", "yesterday"} {
		_, err := parseDate("date", input)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("parseDate(%q) error = %v, want validation failure", input, err)
		}
	}
}

func TestValidateGradeValue(t *testing.T) {
	v := 8.5
	got, err := validateGradeValue(&v)
	if err != nil {
		t.Fatalf("validateGradeValue returned error: %v", err)
	}
	if got != 8.5 {
		t.Errorf("validateGradeValue = %v, want 8.5", got)
	}

	if _, err := validateGradeValue(nil); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("validateGradeValue(nil) error = %v, want validation failure", err)
	}
}

func TestValidateObservationFields(t *testing.T) {
	kind, err := validateObservationFields("Mathematics", "positive", "Helped a classmate")
	if err != nil {
		t.Fatalf("validateObservationFields returned error: %v", err)
	}
	if kind != models.ObservationPositive {
		t.Errorf("kind = %q, want %q", kind, models.ObservationPositive)
	}

	cases := []struct {
		name        string
		discipline  string
		kind        string
		description string
	}{
		{"empty discipline", "", "positive", "desc"},
		{"blank discipline", "   ", "negative", "desc"},
		{"unknown kind", "Mathematics", "neutral", "desc"},
		{"empty kind", "Mathematics", "", "desc"},
		{"empty description", "Mathematics", "positive", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validateObservationFields(tc.discipline, tc.kind, tc.description)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want validation failure", err)
			}
		})
	}
}

func TestValidateStudentFields(t *testing.T) {
	if err := validateStudentFields("Ana", "42", "3A", 2024); err != nil {
		t.Fatalf("validateStudentFields returned error: %v", err)
	}

	cases := []struct {
		name       string
		sname      string
		number     string
		classLabel string
		year       int
	}{
		{"empty name", "", "42", "3A", 2024},
		{"empty number", "Ana", "", "3A", 2024},
		{"empty class", "Ana", "42", "", 2024},
		{"zero year", "Ana", "42", "3A", 0},
		{"negative year", "Ana", "42", "3A", -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateStudentFields(tc.sname, tc.number, tc.classLabel, tc.year)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want validation failure", err)
			}
		})
	}
}

func TestAdminSchoolFilter(t *testing.T) {
	home := int64(1)
	other := int64(2)

	admin := appauth.Principal{ID: 1, Role: models.RoleAdmin}
	monitor := appauth.Principal{ID: 2, Role: models.RoleMonitor, SchoolID: &home}

	if got := adminSchoolFilter(admin, &other); got == nil || *got != other {
		t.Errorf("admin filter = %v, want %d", got, other)
	}
	if got := adminSchoolFilter(admin, nil); got != nil {
		t.Errorf("admin without filter = %v, want nil", got)
	}

	// A monitor's requested filter is dropped, not combined with the home
	// scope; asking about another school must not empty the result set.
	if got := adminSchoolFilter(monitor, &other); got != nil {
		t.Errorf("monitor filter = %v, want nil", got)
	}
	if got := adminSchoolFilter(monitor, &home); got != nil {
		t.Errorf("monitor filter for own school = %v, want nil", got)
	}
}

func TestValidateMonitorAccount(t *testing.T) {
	svc := &monitorServiceImpl{}
	schoolID := int64(1)

	role, err := svc.validateAccount("Joana", "12345678901", "monitor", &schoolID)
	if err != nil {
		t.Fatalf("validateAccount returned error: %v", err)
	}
	if role != models.RoleMonitor {
		t.Errorf("role = %q, want %q", role, models.RoleMonitor)
	}

	// Admins need no school affiliation
	if _, err := svc.validateAccount("Chief", "98765432109", "admin", nil); err != nil {
		t.Errorf("admin without school rejected: %v", err)
	}

	// Non-admin accounts must be bound to a school
	if _, err := svc.validateAccount("Joana", "12345678901", "monitor", nil); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("monitor without school error = %v, want validation failure", err)
	}

	if _, err := svc.validateAccount("Joana", "12345678901", "principal", &schoolID); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("unknown role error = %v, want validation failure", err)
	}

	if _, err := svc.validateAccount("", "12345678901", "monitor", &schoolID); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("empty name error = %v, want validation failure", err)
	}
}
