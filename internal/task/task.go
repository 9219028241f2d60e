// Package task holds the to-do list state: the Task record, the in-memory
// Store that owns the list and editing cursor, and the codec that mirrors the
// list to a key-value store.
package task

import "github.com/google/uuid"

// Task is a single to-do entry.
type Task struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Done    bool   `json:"done"`
}

// NewID returns a fresh task identifier.
func NewID() string {
	return uuid.NewString()
}

// Stats summarizes a list.
type Stats struct {
	Total int
	Done  int
}

// Open returns the number of tasks not yet done.
func (s Stats) Open() int {
	return s.Total - s.Done
}
