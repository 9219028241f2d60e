package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.UI.Title != DefaultTitle {
		t.Errorf("Expected default title, got %q", cfg.UI.Title)
	}
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Expected file backend, got %q", cfg.Storage.Backend)
	}
	if !cfg.PersistsEveryMutation() {
		t.Error("Expected every-mutation persistence by default")
	}
}

func TestLoadFile_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
ui:
  theme: dark
  notify: true
storage:
  backend: sqlite
  path: /tmp/tasks.db
persistence:
  mode: add-only
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.UI.Theme != ThemeDark || !cfg.UI.Notify {
		t.Errorf("UI section not applied: %+v", cfg.UI)
	}
	// Keys absent from the file keep their defaults.
	if cfg.UI.Title != DefaultTitle {
		t.Errorf("Expected default title to survive, got %q", cfg.UI.Title)
	}
	if cfg.Storage.Backend != BackendSQLite || cfg.Storage.Path != "/tmp/tasks.db" {
		t.Errorf("Storage section not applied: %+v", cfg.Storage)
	}
	if cfg.PersistsEveryMutation() {
		t.Error("Expected add-only persistence")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "ui: [", "failed to parse"},
		{"bad backend", "storage:\n  backend: redis\n", "storage.backend"},
		{"bad mode", "persistence:\n  mode: sometimes\n", "persistence.mode"},
		{"bad theme", "ui:\n  theme: neon\n", "ui.theme"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestStoragePath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg := DefaultConfig()
	path, err := cfg.StoragePath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "store.json" {
		t.Errorf("Expected store.json, got %s", path)
	}

	cfg.Storage.Backend = BackendSQLite
	path, err = cfg.StoragePath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "store.db" {
		t.Errorf("Expected store.db, got %s", path)
	}

	cfg.Storage.Path = "/elsewhere/db"
	path, _ = cfg.StoragePath()
	if path != "/elsewhere/db" {
		t.Errorf("Expected explicit path, got %s", path)
	}
}

func TestSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Storage.Backend = BackendSQLite
	cfg.Persistence.Mode = PersistAddOnly
	cfg.UI.Notify = true

	if err := SaveFile(cfg, path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# whatsup configuration") {
		t.Errorf("Expected header comment, got %q", data)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if got.Storage.Backend != BackendSQLite || got.Persistence.Mode != PersistAddOnly || !got.UI.Notify {
		t.Errorf("Round trip lost settings: %+v", got)
	}
}
