package config

import (
	"os"
	"path/filepath"
	"testing"
)

// validJWTSecret is a secret that meets the 32-character minimum requirement.
const validJWTSecret = "test-secret-key-at-least-32-chars!"

func TestLoad_ValidConfig(t *testing.T) {
	// Create a temporary config file
	content := `
api:
  host: "0.0.0.0"
  port: 8080
database:
  path: "/tmp/test.db"
  wal_mode: true
  busy_timeout: 5
security:
  jwt:
    secret: "test-secret-key-at-least-32-chars!"
  password_scheme: "legacy"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/tmp/test.db")
	}

	if cfg.API.Port != 8080 {
		t.Errorf("API.Port = %d, want 8080", cfg.API.Port)
	}

	if cfg.Security.PasswordScheme != PasswordSchemeLegacy {
		t.Errorf("Security.PasswordScheme = %q, want %q", cfg.Security.PasswordScheme, PasswordSchemeLegacy)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	// No JWT secret configured anywhere.
	content := `
database:
  path: "/tmp/test.db"
api:
  port: 8080
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected validation error for missing JWT secret, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API:      APIConfig{Port: 8080},
			Database: DatabaseConfig{Path: "/data/livingroom.db"},
			Security: SecurityConfig{
				JWT:            JWTConfig{Secret: validJWTSecret},
				PasswordScheme: PasswordSchemeLegacy,
			},
		}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"argon2id scheme", func(c *Config) { c.Security.PasswordScheme = PasswordSchemeArgon2id }, false},
		{"missing database path", func(c *Config) { c.Database.Path = "" }, true},
		{"invalid port low", func(c *Config) { c.API.Port = 0 }, true},
		{"invalid port high", func(c *Config) { c.API.Port = 70000 }, true},
		{"missing JWT secret", func(c *Config) { c.Security.JWT.Secret = "" }, true},
		{"JWT secret too short", func(c *Config) { c.Security.JWT.Secret = "short" }, true},
		{"unknown password scheme", func(c *Config) { c.Security.PasswordScheme = "md5" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_GetTimeouts(t *testing.T) {
	cfg := &Config{
		API: APIConfig{
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 45,
				Idle:  60,
			},
		},
	}

	if got := cfg.GetReadTimeout().Seconds(); got != 30 {
		t.Errorf("GetReadTimeout() = %v, want 30", got)
	}

	if got := cfg.GetWriteTimeout().Seconds(); got != 45 {
		t.Errorf("GetWriteTimeout() = %v, want 45", got)
	}

	if got := cfg.GetIdleTimeout().Seconds(); got != 60 {
		t.Errorf("GetIdleTimeout() = %v, want 60", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	t.Setenv("LIVINGROOM_API_HOST", "192.168.1.1")
	t.Setenv("LIVINGROOM_DATABASE_PATH", "/custom/path.db")
	t.Setenv("LIVINGROOM_JWT_SECRET", "jwt-secret")
	t.Setenv("LIVINGROOM_PASSWORD_SCHEME", "argon2id")

	applyEnvOverrides(cfg)

	if cfg.API.Host != "192.168.1.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "192.168.1.1")
	}

	if cfg.Database.Path != "/custom/path.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/custom/path.db")
	}

	if cfg.Security.JWT.Secret != "jwt-secret" {
		t.Errorf("Security.JWT.Secret = %q, want %q", cfg.Security.JWT.Secret, "jwt-secret")
	}

	if cfg.Security.PasswordScheme != PasswordSchemeArgon2id {
		t.Errorf("Security.PasswordScheme = %q, want %q", cfg.Security.PasswordScheme, PasswordSchemeArgon2id)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Database.Path == "" {
		t.Error("defaultConfig should have non-empty Database.Path")
	}

	if cfg.API.Port != 8080 {
		t.Errorf("defaultConfig API.Port = %d, want 8080", cfg.API.Port)
	}

	if cfg.Security.PasswordScheme != PasswordSchemeLegacy {
		t.Errorf("defaultConfig PasswordScheme = %q, want %q", cfg.Security.PasswordScheme, PasswordSchemeLegacy)
	}
}
