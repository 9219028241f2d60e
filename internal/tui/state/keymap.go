package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Actions returned by KeyState.HandleKey.
const (
	ActionUp         = "up"
	ActionDown       = "down"
	ActionTop        = "top"
	ActionBottom     = "bottom"
	ActionAdd        = "add"
	ActionToggle     = "toggle"
	ActionEdit       = "edit"
	ActionRemove     = "remove"
	ActionCopy       = "copy"
	ActionTheme      = "theme"
	ActionSwitchView = "switch_view"
	ActionHelp       = "help"
	ActionQuit       = "quit"
)

// KeyMap contains all key bindings for the task screen.
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Task actions
	Add    key.Binding
	Toggle key.Binding
	Edit   key.Binding
	Remove key.Binding
	Copy   key.Binding

	// Editing
	Finish key.Binding

	// General
	Theme      key.Binding
	SwitchView key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default Vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "top")),
		Bottom: key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),

		Add:    key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add task")),
		Toggle: key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x/space", "done/undone")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e/enter", "edit")),
		Remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("dd", "remove")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy subject")),

		Finish: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "finish editing")),

		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		SwitchView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tasks/about")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Remove, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Add, k.Toggle, k.Edit, k.Remove, k.Copy},
		{k.Finish, k.Theme, k.SwitchView, k.Help, k.Quit},
	}
}

// EditingHelp is the short help shown while a row is being edited.
func (k KeyMap) EditingHelp() []key.Binding {
	return []key.Binding{k.Finish}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd').
type KeyState struct {
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
}

// HandleKey processes a key press in list mode and returns the action to
// take. Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, km KeyMap) (string, bool) {
	if ks.WaitingG {
		ks.WaitingG = false
		if key.Matches(msg, km.Top) {
			return ActionTop, true
		}
		// If not 'g', reset and process normally
	}

	if ks.WaitingD {
		ks.WaitingD = false
		if key.Matches(msg, km.Remove) {
			return ActionRemove, true
		}
	}

	switch {
	case key.Matches(msg, km.Top):
		ks.WaitingG = true
		return "", true // Key consumed, waiting for next
	case key.Matches(msg, km.Remove):
		ks.WaitingD = true
		return "", true
	case key.Matches(msg, km.Up):
		return ActionUp, true
	case key.Matches(msg, km.Down):
		return ActionDown, true
	case key.Matches(msg, km.Bottom):
		return ActionBottom, true
	case key.Matches(msg, km.Add):
		return ActionAdd, true
	case key.Matches(msg, km.Toggle):
		return ActionToggle, true
	case key.Matches(msg, km.Edit):
		return ActionEdit, true
	case key.Matches(msg, km.Copy):
		return ActionCopy, true
	case key.Matches(msg, km.Theme):
		return ActionTheme, true
	case key.Matches(msg, km.SwitchView):
		return ActionSwitchView, true
	case key.Matches(msg, km.Help):
		return ActionHelp, true
	case key.Matches(msg, km.Quit):
		return ActionQuit, true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
}
