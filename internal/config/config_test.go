package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigRequiresSessionSecret(t *testing.T) {
	// Empty value keeps the secret unset while restoring any real value
	// after the test.
	t.Setenv("SESSION_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error when session secret is missing")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("DB_NAME", "monitoria_test")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Session.Secret != "test-secret" {
		t.Fatalf("expected session secret from env, got %q", cfg.Session.Secret)
	}
	if cfg.Database.DBName != "monitoria_test" {
		t.Fatalf("expected db name from env, got %q", cfg.Database.DBName)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port from env, got %q", cfg.Server.Port)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("session:\n  token_ttl: 12h\ndatabase:\n  dbname: fromfile\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Database.DBName != "fromfile" {
		t.Fatalf("expected db name from file, got %q", cfg.Database.DBName)
	}
	if got := cfg.SessionTTL().Hours(); got != 12 {
		t.Fatalf("expected 12h token TTL, got %vh", got)
	}
}

func TestLoadConfigRejectsBadTTL(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SESSION_TOKEN_TTL", "not-a-duration")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for malformed token TTL")
	}
}
