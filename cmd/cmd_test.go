package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ziadkadry99/mission-control/internal/config"
	"github.com/ziadkadry99/mission-control/internal/db"
	"github.com/ziadkadry99/mission-control/internal/prefs"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) (cfgPath, dbPath string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath = filepath.Join(dir, "missioncontrol.yml")
	dbPath = filepath.Join(dir, "data", "prefs.db")

	cfg := config.DefaultConfig()
	cfg.Auth.Passphrase = "open-sesame"
	cfg.Storage.Path = dbPath
	if err := cfg.Save(cfgPath); err != nil {
		t.Fatalf("saving config: %v", err)
	}
	return cfgPath, dbPath
}

func seed(t *testing.T, dbPath, clientID string, entries map[string]string) {
	t.Helper()
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	defer database.Close()

	b := prefs.NewSQLBackend(database)
	for k, v := range entries {
		if err := b.Set(context.Background(), clientID, k, v); err != nil {
			t.Fatalf("seeding %s: %v", k, err)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "missioncontrol ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPrefsShowAndReset(t *testing.T) {
	cfgPath, dbPath := writeConfig(t)
	id := uuid.NewString()
	seed(t, dbPath, id, map[string]string{
		prefs.KeyTheme: "light",
		prefs.KeyAuth:  prefs.AuthMarker,
	})

	out, err := run(t, "prefs", "show", id, "--config", cfgPath)
	if err != nil {
		t.Fatalf("prefs show: %v", err)
	}
	if !strings.Contains(out, "mc_auth") || !strings.Contains(out, "mc_theme") || !strings.Contains(out, "light") {
		t.Errorf("unexpected show output:\n%s", out)
	}
	if strings.Index(out, "mc_auth") > strings.Index(out, "mc_theme") {
		t.Error("keys should be listed in sorted order")
	}

	out, err = run(t, "prefs", "reset", id, "--config", cfgPath)
	if err != nil {
		t.Fatalf("prefs reset: %v", err)
	}
	if !strings.Contains(out, "Cleared preferences") {
		t.Errorf("unexpected reset output %q", out)
	}

	out, err = run(t, "prefs", "show", id, "--config", cfgPath)
	if err != nil {
		t.Fatalf("prefs show: %v", err)
	}
	if !strings.Contains(out, "No preferences stored") {
		t.Errorf("expected empty store after reset, got:\n%s", out)
	}
}

func TestPrefsRejectsBadClientID(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	if _, err := run(t, "prefs", "show", "nope", "--config", cfgPath); err == nil {
		t.Error("expected an error for a malformed client id")
	}
}

func TestPrefsRefusesMemoryBackend(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "missioncontrol.yml")
	cfg := config.DefaultConfig()
	cfg.Storage.Backend = config.StorageMemory
	if err := cfg.Save(cfgPath); err != nil {
		t.Fatalf("saving config: %v", err)
	}

	_, err := run(t, "prefs", "show", uuid.NewString(), "--config", cfgPath)
	if err == nil || !strings.Contains(err.Error(), "memory") {
		t.Errorf("expected memory backend error, got %v", err)
	}
}

func TestOpenBackendMemory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.Backend = config.StorageMemory

	b, closeFn, err := openBackend(cfg)
	if err != nil {
		t.Fatalf("openBackend: %v", err)
	}
	defer closeFn()
	if _, ok := b.(*prefs.MemoryBackend); !ok {
		t.Errorf("expected a memory backend, got %T", b)
	}
}
