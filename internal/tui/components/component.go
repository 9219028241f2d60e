// Package components provides the rendering pieces of the task screen.
package components

import "github.com/hy4ri/whatsup/internal/task"

// Component is a rendering unit that owns its own layout.
type Component interface {
	// View renders the component to a string.
	View() string

	// SetSize updates the component's dimensions.
	SetSize(width, height int)
}

// DataReceiver is an optional interface for components that receive external data.
type DataReceiver[T any] interface {
	// SetData updates the component's data source.
	SetData(data T)
}

var (
	_ Component                  = (*TaskListModel)(nil)
	_ Component                  = (*MastheadModel)(nil)
	_ Component                  = (*NavBarModel)(nil)
	_ Component                  = (*FabModel)(nil)
	_ DataReceiver[TaskListData] = (*TaskListModel)(nil)
	_ DataReceiver[task.Stats]   = (*MastheadModel)(nil)
)
