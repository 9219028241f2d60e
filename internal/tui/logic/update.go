package logic

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/whatsup/internal/task"
	"github.com/hy4ri/whatsup/internal/tui/state"
	"github.com/hy4ri/whatsup/internal/tui/styles"
)

// Handler owns every state transition of the TUI.
type Handler struct {
	*state.State
	ctx context.Context
}

// NewHandler creates a Handler. ctx is used for storage reads.
func NewHandler(ctx context.Context, s *state.State) *Handler {
	return &Handler{State: s, ctx: ctx}
}

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.loadTasks(),
	)
}

// Update implements tea.Model.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		return h.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		h.handleWindowSizeMsg(msg)
		return nil

	case spinner.TickMsg:
		// Stop ticking once the list is in.
		if h.Store.Loaded() {
			return nil
		}
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case tasksLoadedMsg:
		return h.handleTasksLoaded(msg)

	case statusMsg:
		h.StatusMsg = msg.msg
		h.StatusLevel = msg.level
		return nil
	}

	// Forward non-key messages (like blink) to the inline editor
	if h.Store.EditingID() != "" {
		var cmd tea.Cmd
		h.EditInput, cmd = h.EditInput.Update(msg)
		return cmd
	}

	return nil
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) {
	h.Width = msg.Width
	h.Height = msg.Height
	h.Help.Width = msg.Width
}

func (h *Handler) handleTasksLoaded(msg tasksLoadedMsg) tea.Cmd {
	switch {
	case msg.err != nil:
		// The screen still comes up, empty.
		task.LogReadError(h.Logger, msg.err)
	case !msg.found:
		h.Logger.Debug("no stored tasks")
	}

	// Tasks added while loading were written without the stored ones.
	h.persist(h.Store.Apply(msg.tasks))
	h.clampCursor()
	h.Logger.Info("tasks loaded", "tasks", h.Store.Len())
	return nil
}

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if h.Store.EditingID() != "" {
		return h.handleEditingKey(msg)
	}

	action, ok := h.KeyState.HandleKey(msg, h.Keymap)
	if !ok || action == "" {
		return nil
	}

	if h.CurrentView == state.ViewAbout {
		return h.handleAboutAction(action)
	}
	return h.handleListAction(action)
}

func (h *Handler) handleListAction(action string) tea.Cmd {
	switch action {
	case state.ActionUp:
		h.moveCursor(-1)
	case state.ActionDown:
		h.moveCursor(1)
	case state.ActionTop:
		h.Cursor = 0
	case state.ActionBottom:
		h.Cursor = h.Store.Len() - 1
		h.clampCursor()
	case state.ActionAdd:
		return h.addTask()
	case state.ActionToggle:
		if t, ok := h.SelectedTask(); ok {
			return h.toggleTask(t.ID)
		}
	case state.ActionEdit:
		if t, ok := h.SelectedTask(); ok {
			return h.startEditing(t)
		}
	case state.ActionRemove:
		if t, ok := h.SelectedTask(); ok {
			return h.removeTask(t.ID)
		}
	case state.ActionCopy:
		return h.handleCopy()
	default:
		return h.handleGlobalAction(action)
	}
	return nil
}

func (h *Handler) handleAboutAction(action string) tea.Cmd {
	switch action {
	case state.ActionAdd:
		// Adding always lands on the list.
		h.setView(state.ViewTasks)
		return h.addTask()
	default:
		return h.handleGlobalAction(action)
	}
}

func (h *Handler) handleGlobalAction(action string) tea.Cmd {
	switch action {
	case state.ActionTheme:
		h.Theme = styles.ToggleTheme()
		h.setStatus(state.StatusInfo, "Theme: "+h.Theme)
	case state.ActionSwitchView:
		h.setView(state.ViewByName(h.NavComp.Next()))
	case state.ActionHelp:
		h.Help.ShowAll = !h.Help.ShowAll
	case state.ActionQuit:
		h.Quitting = true
		return tea.Quit
	}
	return nil
}

// handleEditingKey routes keys to the inline editor until enter or esc.
func (h *Handler) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	id := h.Store.EditingID()

	switch {
	case msg.Type == tea.KeyCtrlC:
		h.finishEditing(id)
		h.Quitting = true
		return tea.Quit
	case key.Matches(msg, h.Keymap.Finish):
		h.finishEditing(id)
		return nil
	}

	before := h.EditInput.Value()
	var cmd tea.Cmd
	h.EditInput, cmd = h.EditInput.Update(msg)

	if after := h.EditInput.Value(); after != before {
		h.persist(h.Store.RenameSubject(id, after))
	}
	return cmd
}

func (h *Handler) setView(v state.View) {
	h.CurrentView = v
	h.NavComp.SetActive(v.Name())
	h.KeyState.Reset()
}

func (h *Handler) moveCursor(delta int) {
	h.Cursor += delta
	h.clampCursor()
}

func (h *Handler) clampCursor() {
	if n := h.Store.Len(); h.Cursor >= n {
		h.Cursor = n - 1
	}
	if h.Cursor < 0 {
		h.Cursor = 0
	}
}

// persist hands a mutation's snapshot to the background writer.
func (h *Handler) persist(c task.Change) {
	if !c.OK || !c.Persist || h.Writer == nil {
		return
	}
	h.Writer.Submit(c.Snapshot)
}
