package auth

import (
	"testing"
	"time"
)

func testService(ttl time.Duration) *SessionService {
	return NewSessionService(SessionConfig{
		SecretKey: "test-secret",
		TokenTTL:  ttl,
		Issuer:    "monitoria-test",
	})
}

func TestSessionRoundTrip(t *testing.T) {
	svc := testService(time.Minute)

	schoolID := int64(3)
	token, err := svc.Issue(7, "Maria", "monitor", &schoolID)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	claims, err := svc.Resolve(token)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	if claims.MonitorID != 7 || claims.Name != "Maria" || claims.Role != "monitor" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.SchoolID == nil || *claims.SchoolID != 3 {
		t.Fatalf("expected school id 3, got %v", claims.SchoolID)
	}
}

func TestSessionAdminHasNoSchool(t *testing.T) {
	svc := testService(time.Minute)

	token, err := svc.Issue(1, "admin", "admin", nil)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	claims, err := svc.Resolve(token)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if claims.SchoolID != nil {
		t.Fatalf("expected nil school id for admin, got %v", *claims.SchoolID)
	}
}

func TestSessionRejectsWrongKey(t *testing.T) {
	token, err := testService(time.Minute).Issue(1, "admin", "admin", nil)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	other := NewSessionService(SessionConfig{SecretKey: "different", TokenTTL: time.Minute, Issuer: "monitoria-test"})
	if _, err := other.Resolve(token); err == nil {
		t.Fatalf("expected resolution to fail under a different key")
	}
}

func TestSessionRejectsExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)

	token, err := svc.Issue(1, "admin", "admin", nil)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := svc.Resolve(token); err != ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestSessionRejectsGarbage(t *testing.T) {
	svc := testService(time.Minute)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Resolve(tok); err == nil {
			t.Errorf("expected resolution to fail for %q", tok)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken("Token abc"); err == nil {
		t.Fatalf("expected error for non-bearer header")
	}
	if _, err := ExtractBearerToken("Bearer "); err == nil {
		t.Fatalf("expected error for empty bearer token")
	}
	tok, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Fatalf("unexpected result: %q, %v", tok, err)
	}
}
