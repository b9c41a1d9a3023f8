package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Auth.Passphrase = "open-sesame"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Backend != StorageSQLite {
		t.Errorf("expected default backend %q, got %q", StorageSQLite, cfg.Storage.Backend)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level %q, got %q", "info", cfg.Log.Level)
	}
	if cfg.Auth.Passphrase != "" {
		t.Error("default config must not ship a passphrase")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	original := validConfig()
	original.Server.Port = 9090
	original.Server.AllowAllOrigins = true
	original.Storage.Backend = StorageMemory
	original.Log.Development = true
	original.Data.File = "panels.yml"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", loaded.Server.Port)
	}
	if !loaded.Server.AllowAllOrigins {
		t.Error("allow_all_origins lost in round-trip")
	}
	if loaded.Auth.Passphrase != original.Auth.Passphrase {
		t.Errorf("passphrase: got %q, want %q", loaded.Auth.Passphrase, original.Auth.Passphrase)
	}
	if loaded.Storage.Backend != StorageMemory {
		t.Errorf("backend: got %q, want %q", loaded.Storage.Backend, StorageMemory)
	}
	if !loaded.Log.Development {
		t.Error("log.development lost in round-trip")
	}
	if loaded.Data.File != "panels.yml" {
		t.Errorf("data.file: got %q", loaded.Data.File)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := validConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("MISSIONCTL_AUTH_PASSPHRASE", "from-env")
	t.Setenv("MISSIONCTL_SERVER_PORT", "9191")
	t.Setenv("MISSIONCTL_SERVER_ALLOW_ALL_ORIGINS", "true")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Auth.Passphrase != "from-env" {
		t.Errorf("env override failed: got %q", loaded.Auth.Passphrase)
	}
	if loaded.Server.Port != 9191 {
		t.Errorf("env port override failed: got %d", loaded.Server.Port)
	}
	if !loaded.Server.AllowAllOrigins {
		t.Error("env bool override failed")
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"MISSIONCTL_AUTH_PASSPHRASE":          "auth.passphrase",
		"MISSIONCTL_SERVER_ALLOW_ALL_ORIGINS": "server.allow_all_origins",
		"MISSIONCTL_LOG_LEVEL":                "log.level",
		"MISSIONCTL_DEBUG":                    "debug",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got: %v", err)
	}
}

func TestValidateMissingPassphrase(t *testing.T) {
	if err := DefaultConfig().Validate(); err == nil {
		t.Error("expected validation error for empty passphrase")
	}
}

func TestValidateInvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.Server.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected validation error for port %d", port)
		}
	}
}

func TestValidateInvalidBackend(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Backend = "redis"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown backend")
	}
}

func TestValidateSQLiteNeedsPath(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty storage.path")
	}

	cfg.Storage.Backend = StorageMemory
	if err := cfg.Validate(); err != nil {
		t.Errorf("memory backend needs no path, got: %v", err)
	}
}

func TestValidateInvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid log level")
	}
}

func TestWizardValidators(t *testing.T) {
	if err := validatePassphrase(""); err == nil {
		t.Error("empty passphrase must be rejected")
	}
	if err := validatePassphrase("x"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "abc", "0", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
	if err := validatePort("8080"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
