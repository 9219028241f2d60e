package storage

import (
	"context"
	"errors"

	"github.com/hy4ri/whatsup/internal/config"
	"github.com/zalando/go-keyring"
)

const keyringService = "whatsup"

// Keyring stores each item as a secret in the OS keyring, with the item key
// as the keyring user. OS keyrings cap secret sizes, so this suits short lists.
type Keyring struct {
	service string
}

// NewKeyring returns a Keyring store under service.
func NewKeyring(service string) *Keyring {
	return &Keyring{service: service}
}

// GetItem implements Storage.
func (k *Keyring) GetItem(_ context.Context, key string) (string, bool, error) {
	value, err := keyring.Get(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrap(config.BackendKeyring, opGet, key, err)
	}
	return value, true, nil
}

// SetItem implements Storage.
func (k *Keyring) SetItem(_ context.Context, key, value string) error {
	return wrap(config.BackendKeyring, opSet, key, keyring.Set(k.service, key, value))
}

// Close implements Storage.
func (k *Keyring) Close() error {
	return nil
}
