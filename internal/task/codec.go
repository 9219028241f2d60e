package task

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hy4ri/whatsup/internal/storage"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// StorageKey is the key the whole list is stored under.
const StorageKey = "tasks"

// ErrInvalidPayload is returned when a stored value is not a valid task list.
var ErrInvalidPayload = errors.New("invalid task list payload")

//go:embed tasks.schema.json
var schemaJSON string

const schemaURL = "tasks.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func listSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("failed to load task schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Encode serializes the list as a JSON array.
func Encode(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("failed to encode tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses and validates a stored list.
func Decode(value string) ([]Task, error) {
	var raw interface{}
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	s, err := listSchema()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, schemaMessage(err))
	}

	var tasks []Task
	if err := json.Unmarshal([]byte(value), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidPayload, t.ID)
		}
		seen[t.ID] = true
	}
	return tasks, nil
}

// schemaMessage flattens a validation error to its first leaf cause.
func schemaMessage(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return ve.InstanceLocation + ": " + ve.Message
}

// Read fetches the list from s. found is false when nothing was stored yet.
func Read(ctx context.Context, s storage.Storage) (tasks []Task, found bool, err error) {
	value, ok, err := s.GetItem(ctx, StorageKey)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	tasks, err = Decode(value)
	if err != nil {
		return nil, true, err
	}
	return tasks, true, nil
}

// Write stores the whole list in s.
func Write(ctx context.Context, s storage.Storage, tasks []Task) error {
	value, err := Encode(tasks)
	if err != nil {
		return err
	}
	return s.SetItem(ctx, StorageKey, value)
}
