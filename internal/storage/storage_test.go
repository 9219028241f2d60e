package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hy4ri/whatsup/internal/config"
	"github.com/zalando/go-keyring"
)

func backends(t *testing.T) map[string]Storage {
	t.Helper()
	keyring.MockInit()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return map[string]Storage{
		"memory":  NewMemory(),
		"file":    NewFile(filepath.Join(t.TempDir(), "nested", "store.json")),
		"sqlite":  db,
		"keyring": NewKeyring("whatsup-test"),
	}
}

func TestBackends_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.GetItem(ctx, "tasks")
			if err != nil {
				t.Fatalf("GetItem on empty store failed: %v", err)
			}
			if ok {
				t.Fatal("Expected missing key to report ok=false")
			}

			if err := s.SetItem(ctx, "tasks", `[{"id":"a"}]`); err != nil {
				t.Fatalf("SetItem failed: %v", err)
			}
			if err := s.SetItem(ctx, "other", "x"); err != nil {
				t.Fatalf("SetItem failed: %v", err)
			}
			if err := s.SetItem(ctx, "tasks", `[]`); err != nil {
				t.Fatalf("SetItem overwrite failed: %v", err)
			}

			got, ok, err := s.GetItem(ctx, "tasks")
			if err != nil || !ok {
				t.Fatalf("GetItem failed: ok=%v err=%v", ok, err)
			}
			if got != `[]` {
				t.Errorf("Expected overwritten value, got %q", got)
			}

			got, _, _ = s.GetItem(ctx, "other")
			if got != "x" {
				t.Errorf("Expected other key untouched, got %q", got)
			}
		})
	}
}

func TestFile_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	if err := NewFile(path).SetItem(ctx, "tasks", "v1"); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 permissions, got %v", info.Mode().Perm())
	}

	got, ok, err := NewFile(path).GetItem(ctx, "tasks")
	if err != nil || !ok || got != "v1" {
		t.Errorf("Expected v1 from a fresh handle, got %q ok=%v err=%v", got, ok, err)
	}
}

func TestFile_CorruptIsStorageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	_, _, err := NewFile(path).GetItem(context.Background(), "tasks")
	se, ok := IsStorageError(err)
	if !ok {
		t.Fatalf("Expected *Error, got %T (%v)", err, err)
	}
	if !se.IsRead() || se.Key != "tasks" || se.Backend != config.BackendFile {
		t.Errorf("Unexpected error fields: %+v", se)
	}
}

func TestMemory_Failures(t *testing.T) {
	boom := errors.New("boom")
	m := NewMemory()
	m.FailSet = boom

	err := m.SetItem(context.Background(), "tasks", "x")
	if !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped boom, got %v", err)
	}
	se, _ := IsStorageError(err)
	if se == nil || !se.IsWrite() {
		t.Errorf("Expected write error, got %+v", se)
	}
}

func TestOpen(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	tests := []struct {
		backend string
		want    string
	}{
		{config.BackendMemory, "*storage.Memory"},
		{config.BackendFile, "*storage.File"},
		{config.BackendSQLite, "*storage.SQLite"},
		{config.BackendKeyring, "*storage.Keyring"},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Storage.Backend = tt.backend

			s, err := Open(cfg)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer s.Close()

			var got string
			switch s.(type) {
			case *Memory:
				got = "*storage.Memory"
			case *File:
				got = "*storage.File"
			case *SQLite:
				got = "*storage.SQLite"
			case *Keyring:
				got = "*storage.Keyring"
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %T", tt.want, s)
			}
		})
	}

	cfg := config.DefaultConfig()
	cfg.Storage.Backend = "redis"
	if _, err := Open(cfg); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Expected ErrUnknownBackend, got %v", err)
	}
}

func TestLogFields(t *testing.T) {
	plain := errors.New("boom")
	if got := LogFields(plain); len(got) != 2 {
		t.Errorf("Expected only the err pair for a plain error, got %v", got)
	}

	wrapped := fmt.Errorf("loading: %w", wrap(config.BackendSQLite, opGet, "tasks", plain))
	got := LogFields(wrapped)
	want := []any{"err", wrapped, "backend", config.BackendSQLite, "op", opGet, "key", "tasks"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %v, want %v", i, got[i], want[i])
		}
	}
}
