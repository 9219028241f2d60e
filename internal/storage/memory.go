package storage

import (
	"context"
	"sync"

	"github.com/hy4ri/whatsup/internal/config"
)

// Memory is an in-process Storage.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string

	// FailGet and FailSet make the corresponding call return the error. Tests only.
	FailGet error
	FailSet error
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

// GetItem implements Storage.
func (m *Memory) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailGet != nil {
		return "", false, wrap(config.BackendMemory, opGet, key, m.FailGet)
	}
	v, ok := m.items[key]
	return v, ok, nil
}

// SetItem implements Storage.
func (m *Memory) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSet != nil {
		return wrap(config.BackendMemory, opSet, key, m.FailSet)
	}
	m.items[key] = value
	return nil
}

// Close implements Storage.
func (m *Memory) Close() error {
	return nil
}
