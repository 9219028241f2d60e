// Package storage provides string key-value stores used to persist the task list.
package storage

import (
	"context"
	"fmt"

	"github.com/hy4ri/whatsup/internal/config"
)

// Storage is an opaque key-value store. Both calls may fail; a missing key
// is not an error and is reported with ok=false.
type Storage interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	Close() error
}

// Open returns the backend selected by cfg.
func Open(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendKeyring:
		return NewKeyring(keyringService), nil
	case config.BackendFile, config.BackendSQLite:
		path, err := cfg.StoragePath()
		if err != nil {
			return nil, err
		}
		if cfg.Storage.Backend == config.BackendSQLite {
			return OpenSQLite(path)
		}
		return NewFile(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Storage.Backend)
	}
}
