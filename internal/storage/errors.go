package storage

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Error represents a failed read or write against a backend.
type Error struct {
	Backend string
	Op      string // "get" or "set"
	Key     string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %s %q: %v", e.Backend, e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsRead returns true if the error came from GetItem.
func (e *Error) IsRead() bool {
	return e.Op == opGet
}

// IsWrite returns true if the error came from SetItem.
func (e *Error) IsWrite() bool {
	return e.Op == opSet
}

// IsStorageError checks if an error is a storage Error and returns it.
func IsStorageError(err error) (*Error, bool) {
	var se *Error
	ok := errors.As(err, &se)
	return se, ok
}

const (
	opGet = "get"
	opSet = "set"
)

func wrap(backend, op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Backend: backend, Op: op, Key: key, Err: err}
}

// LogFields returns key-value pairs for logging err, with the backend,
// operation and key broken out when err is a storage Error.
func LogFields(err error) []any {
	fields := []any{"err", err}
	if se, ok := IsStorageError(err); ok {
		fields = append(fields, "backend", se.Backend, "op", se.Op, "key", se.Key)
	}
	return fields
}
