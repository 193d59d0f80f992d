package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultOwner != "admin" {
		t.Fatalf("DefaultOwner = %q, want admin", cfg.General.DefaultOwner)
	}
	if cfg.Budget.WarnPct != 80 || cfg.Budget.CriticalPct != 90 {
		t.Fatalf("thresholds = %v/%v, want 80/90", cfg.Budget.WarnPct, cfg.Budget.CriticalPct)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultOwner = "jordan"
	cfg.Budget.WarnPct = 70
	cfg.General.DBPath = "/tmp/custom.db"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file missing after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DefaultOwner != "jordan" {
		t.Fatalf("DefaultOwner = %q, want jordan", got.General.DefaultOwner)
	}
	if got.Budget.WarnPct != 70 {
		t.Fatalf("WarnPct = %v, want 70", got.Budget.WarnPct)
	}
	if got.General.DBPath != "/tmp/custom.db" {
		t.Fatalf("DBPath = %q", got.General.DBPath)
	}
}

func TestDBPath(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)

	cfg := DefaultConfig()
	want := filepath.Join(dataDir, "flipledger", "tracker.db")
	if got := DBPath(cfg); got != want {
		t.Fatalf("DBPath = %q, want %q", got, want)
	}

	cfg.General.DBPath = "/elsewhere/x.db"
	if got := DBPath(cfg); got != "/elsewhere/x.db" {
		t.Fatalf("override DBPath = %q", got)
	}
}
