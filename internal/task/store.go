package task

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hy4ri/whatsup/internal/storage"
)

// Policy decides which mutations produce a persistence snapshot.
type Policy int

const (
	// PersistEveryMutation snapshots the list after add, toggle, rename and remove.
	PersistEveryMutation Policy = iota
	// PersistAddOnly snapshots only on add, and only the list as it was
	// before the new task was prepended.
	PersistAddOnly
)

// Change is the outcome of a mutation.
type Change struct {
	// Task is the affected task after the mutation (or the removed task).
	Task Task
	// OK is false when the target id was not in the list.
	OK bool
	// Persist reports whether Snapshot should be written to storage.
	Persist  bool
	Snapshot []Task
}

// Store owns the ordered task list and the editing cursor.
// It has a single owner and no internal locking.
type Store struct {
	tasks   []Task
	editing string
	loaded  bool
	policy  Policy
	newID   func() string
}

// NewStore creates an empty, not yet loaded Store.
func NewStore(policy Policy) *Store {
	return &Store{
		tasks:  []Task{},
		policy: policy,
		newID:  NewID,
	}
}

// SetIDGenerator overrides id generation. Tests only.
func (s *Store) SetIDGenerator(gen func() string) {
	s.newID = gen
}

// Load reads the persisted list and applies it. A missing value leaves the
// list empty; read and decode failures are logged and swallowed. The store
// is marked loaded in every case.
func (s *Store) Load(ctx context.Context, st storage.Storage, logger *log.Logger) {
	tasks, _, err := Read(ctx, st)
	if err != nil {
		LogReadError(logger, err)
	}
	s.Apply(tasks)
}

// LogReadError logs a failed Read. Both load paths report through it.
func LogReadError(logger *log.Logger, err error) {
	if errors.Is(err, ErrInvalidPayload) {
		logger.Error("stored tasks are unreadable, starting empty", "err", err)
		return
	}
	logger.Error("failed to load tasks", storage.LogFields(err)...)
}

// Apply installs a loaded list and marks the store loaded. Tasks added before
// the load resolved stay in front; loaded tasks with a clashing id are dropped.
//
// Those early adds were persisted against an empty list, so the returned
// Change asks for a rewrite when any exist: the merged list under
// PersistEveryMutation, the loaded list under PersistAddOnly.
func (s *Store) Apply(loaded []Task) Change {
	early := len(s.tasks) > 0
	merged := make([]Task, 0, len(s.tasks)+len(loaded))
	merged = append(merged, s.tasks...)

	for _, t := range loaded {
		if s.indexOf(t.ID) >= 0 {
			continue
		}
		merged = append(merged, t)
	}

	s.tasks = merged
	s.loaded = true

	c := Change{OK: true}
	if !early {
		return c
	}
	c.Persist = true
	if s.policy == PersistAddOnly {
		c.Snapshot = append([]Task{}, loaded...)
	} else {
		c.Snapshot = s.Tasks()
	}
	return c
}

// Loaded reports whether the initial load has resolved.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Add prepends a new empty task and puts it in edit mode.
func (s *Store) Add() Change {
	before := s.Tasks()

	t := Task{ID: s.newID()}
	s.tasks = append([]Task{t}, s.tasks...)
	s.editing = t.ID

	c := Change{Task: t, OK: true, Persist: true}
	if s.policy == PersistAddOnly {
		c.Snapshot = before
	} else {
		c.Snapshot = s.Tasks()
	}
	return c
}

// ToggleDone inverts the done flag of the task with id.
func (s *Store) ToggleDone(id string) Change {
	i := s.indexOf(id)
	if i < 0 {
		return Change{}
	}

	s.tasks[i].Done = !s.tasks[i].Done
	return s.changed(s.tasks[i])
}

// RenameSubject replaces the subject of the task with id.
func (s *Store) RenameSubject(id, subject string) Change {
	i := s.indexOf(id)
	if i < 0 {
		return Change{}
	}

	s.tasks[i].Subject = subject
	return s.changed(s.tasks[i])
}

// Remove deletes the first task with id. Unknown ids leave the list as is.
func (s *Store) Remove(id string) Change {
	i := s.indexOf(id)
	if i < 0 {
		return Change{}
	}

	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return s.changed(removed)
}

// SetEditingCursor enters edit mode for id.
func (s *Store) SetEditingCursor(id string) {
	s.editing = id
}

// FinishEditing leaves edit mode, whichever task is passed.
func (s *Store) FinishEditing(string) {
	s.editing = ""
}

// EditingID returns the task being edited, or "" if none or if the task
// has since been removed.
func (s *Store) EditingID() string {
	if s.editing == "" || s.indexOf(s.editing) < 0 {
		return ""
	}
	return s.editing
}

// IsEditing reports whether id is the task being edited.
func (s *Store) IsEditing(id string) bool {
	return id != "" && s.EditingID() == id
}

// Tasks returns a copy of the list.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Task returns the task with id.
func (s *Store) Task(id string) (Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Stats counts total and done tasks.
func (s *Store) Stats() Stats {
	st := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Done {
			st.Done++
		}
	}
	return st
}

func (s *Store) changed(t Task) Change {
	c := Change{Task: t, OK: true}
	if s.policy == PersistEveryMutation {
		c.Persist = true
		c.Snapshot = s.Tasks()
	}
	return c
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
