package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func setRequiredEnv() {
	os.Setenv("SESSION_SECRET", "test-secret-32-characters-long!")
	os.Setenv("DB_PASSWORD", "test")
	os.Setenv("ADMIN_EMAIL", "admin@example.com")
	os.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv()
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	tests := []struct {
		name     string
		actual   any
		expected any
	}{
		{"Port", cfg.Server.Port, "8080"},
		{"Env", cfg.Server.Env, "development"},
		{"DBHost", cfg.Database.Host, "localhost"},
		{"DBPort", cfg.Database.Port, 5432},
		{"SessionExpiry", cfg.Auth.SessionExpiry, 12 * time.Hour},
		{"MonitorInterval", cfg.Auth.MonitorInterval, 5 * time.Second},
		{"RedisAddr", cfg.Redis.Address, ""},
		{"CacheEnabled", cfg.Cache.Enabled, true},
		{"CacheTTL", cfg.Cache.TTLSeconds, 60},
	}

	for _, tt := range tests {
		if tt.actual != tt.expected {
			t.Errorf("%s: got %v, want %v", tt.name, tt.actual, tt.expected)
		}
	}
}

func TestLoad_MissingSessionSecret(t *testing.T) {
	setRequiredEnv()
	os.Unsetenv("SESSION_SECRET")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil, want error for missing SESSION_SECRET")
	}
}

func TestLoad_MissingAdminCredentials(t *testing.T) {
	setRequiredEnv()
	os.Unsetenv("ADMIN_PASSWORD_HASH")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil, want error for missing admin credentials")
	}
}

func TestLoad_ShortSecretRejected(t *testing.T) {
	setRequiredEnv()
	os.Setenv("SESSION_SECRET", "short")
	defer os.Clearenv()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() = nil, want error for short secret")
	}
	if !strings.Contains(err.Error(), "at least 16 characters") {
		t.Errorf("error = %v, want length complaint", err)
	}
}

func TestLoad_ProductionRequiresLongerSecret(t *testing.T) {
	setRequiredEnv()
	os.Setenv("ENV", "production")
	os.Setenv("SESSION_SECRET", "twenty-characters-ok")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil, want error: 20 chars too short for production")
	}
}

func TestValidateSessionSecret_WeakValues(t *testing.T) {
	for _, weak := range []string{"secret", "CHANGEME", "password"} {
		if err := validateSessionSecret(weak, "development"); err == nil {
			t.Errorf("validateSessionSecret(%q) = nil, want error", weak)
		}
	}
}

func TestLoad_ParsesLists(t *testing.T) {
	setRequiredEnv()
	os.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	os.Setenv("TRUSTED_PROXIES", "10.0.0.0/8")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("AllowedOrigins = %v, want trimmed two-element list", cfg.Server.AllowedOrigins)
	}
	if len(cfg.Server.TrustedProxies) != 1 {
		t.Errorf("TrustedProxies = %v, want one entry", cfg.Server.TrustedProxies)
	}
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	setRequiredEnv()
	os.Setenv("SESSION_EXPIRY", "not-a-duration")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	if cfg.Auth.SessionExpiry != 12*time.Hour {
		t.Errorf("SessionExpiry = %v, want default 12h", cfg.Auth.SessionExpiry)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "portfolio", SSLMode: "require"}

	want := "host=db port=5433 user=u password=p dbname=portfolio sslmode=require"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestValidateSessionSecret_ProductionLength(t *testing.T) {
	if err := validateSessionSecret("test-secret-32-characters-long!!", "production"); err != nil {
		t.Errorf("validateSessionSecret(32 chars, production) = %v, want nil", err)
	}
}
