package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hy4ri/whatsup/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("Expected %q in %q", version, out)
	}
}

func TestInit_WritesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if _, err := execute(t, "", "init", "--config", path, "--backend", "sqlite", "--persist", "add-only"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Storage.Backend != config.BackendSQLite {
		t.Errorf("Expected sqlite backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Persistence.Mode != config.PersistAddOnly {
		t.Errorf("Expected add-only, got %q", cfg.Persistence.Mode)
	}
}

func TestInit_ExistingFile(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		args      []string
		overwrite bool
	}{
		{"declined", "n\n", nil, false},
		{"confirmed", "y\n", nil, true},
		{"forced", "", []string{"--force"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte("# mine\n"), 0600); err != nil {
				t.Fatal(err)
			}

			args := append([]string{"init", "--config", path}, tt.args...)
			if _, err := execute(t, tt.stdin, args...); err != nil {
				t.Fatalf("init failed: %v", err)
			}

			data, _ := os.ReadFile(path)
			if overwritten := string(data) != "# mine\n"; overwritten != tt.overwrite {
				t.Errorf("overwritten = %v, want %v", overwritten, tt.overwrite)
			}
		})
	}
}

func TestInit_RejectsBadFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if _, err := execute(t, "", "init", "--config", path, "--backend", "floppy"); err == nil {
		t.Fatal("Expected an error for an unknown backend")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no config file to be written")
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "storage:\n  backend: sqlite\nui:\n  theme: light\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	opts := &options{configPath: path, backend: config.BackendMemory}
	cfg, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Storage.Backend != config.BackendMemory {
		t.Errorf("Expected flag to win, got %q", cfg.Storage.Backend)
	}
	if cfg.UI.Theme != config.ThemeLight {
		t.Errorf("Expected file value kept, got %q", cfg.UI.Theme)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	storePath := filepath.Join(dir, "store.json")

	cfg := config.DefaultConfig()
	cfg.Storage.Path = storePath
	if err := config.SaveFile(cfg, cfgPath); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "list", "--config", cfgPath)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "No tasks yet") {
		t.Errorf("Expected empty message, got %q", out)
	}

	data := `{"tasks":"[{\"id\":\"1\",\"subject\":\"Buy milk\",\"done\":true},{\"id\":\"2\",\"subject\":\"Call mom\",\"done\":false}]"}`
	if err := os.WriteFile(storePath, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	out, err = execute(t, "", "list", "--config", cfgPath)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"[x] Buy milk", "[ ] Call mom", "1 of 2 done"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}
