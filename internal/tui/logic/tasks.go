package logic

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/whatsup/internal/task"
	"github.com/hy4ri/whatsup/internal/tui/state"
)

// Message types
type statusMsg struct {
	msg   string
	level state.StatusLevel
}

type tasksLoadedMsg struct {
	tasks []task.Task
	found bool
	err   error
}

// loadTasks reads the stored list off the Update loop. The Store itself is
// only touched when the result comes back as a message.
func (h *Handler) loadTasks() tea.Cmd {
	ctx, st := h.ctx, h.Storage
	return func() tea.Msg {
		if st == nil {
			return tasksLoadedMsg{}
		}
		tasks, found, err := task.Read(ctx, st)
		return tasksLoadedMsg{tasks: tasks, found: found, err: err}
	}
}

// addTask prepends an empty task and opens it for editing.
func (h *Handler) addTask() tea.Cmd {
	c := h.Store.Add()
	h.persist(c)
	h.Cursor = 0
	h.Logger.Debug("task added", "id", c.Task.ID)
	return h.startEditing(c.Task)
}

// toggleTask flips the done flag and celebrates when nothing is left open.
func (h *Handler) toggleTask(id string) tea.Cmd {
	c := h.Store.ToggleDone(id)
	if !c.OK {
		return nil
	}
	h.persist(c)

	if !c.Task.Done {
		h.setStatus(state.StatusInfo, "Reopened: "+subjectOrPlaceholder(c.Task))
		return nil
	}
	h.setStatus(state.StatusSuccess, "Done: "+subjectOrPlaceholder(c.Task))

	if stats := h.Store.Stats(); stats.Open() == 0 && h.Config.UI.Notify {
		return h.notifyAllDone(stats.Total)
	}
	return nil
}

// startEditing puts t in edit mode and seeds the inline editor with its subject.
func (h *Handler) startEditing(t task.Task) tea.Cmd {
	h.Store.SetEditingCursor(t.ID)
	h.EditInput.SetValue(t.Subject)
	h.EditInput.CursorEnd()
	h.EditInput.Focus()
	return textinput.Blink
}

func (h *Handler) finishEditing(id string) {
	h.Store.FinishEditing(id)
	h.EditInput.Blur()
	h.EditInput.Reset()
}

func (h *Handler) removeTask(id string) tea.Cmd {
	editing := h.Store.IsEditing(id)
	c := h.Store.Remove(id)
	if !c.OK {
		return nil
	}
	h.persist(c)

	if editing {
		h.EditInput.Blur()
		h.EditInput.Reset()
	}
	h.clampCursor()
	h.setStatus(state.StatusInfo, "Removed: "+subjectOrPlaceholder(c.Task))
	return nil
}

// handleCopy copies the selected subject to the clipboard.
func (h *Handler) handleCopy() tea.Cmd {
	t, ok := h.SelectedTask()
	if !ok {
		return nil
	}
	if t.Subject == "" {
		h.setStatus(state.StatusInfo, "Nothing to copy")
		return nil
	}

	content := t.Subject
	return func() tea.Msg {
		if err := clipboard.WriteAll(content); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error(), level: state.StatusError}
		}
		return statusMsg{msg: "Copied: " + content, level: state.StatusSuccess}
	}
}

func (h *Handler) notifyAllDone(total int) tea.Cmd {
	title := h.Config.UI.Title
	logger := h.Logger
	return func() tea.Msg {
		err := beeep.Notify(title, fmt.Sprintf("All %d tasks done!", total), "")
		if err != nil {
			logger.Warn("failed to send notification", "err", err)
		}
		return nil
	}
}

func (h *Handler) setStatus(level state.StatusLevel, msg string) {
	h.StatusMsg = msg
	h.StatusLevel = level
}

func subjectOrPlaceholder(t task.Task) string {
	if t.Subject == "" {
		return "(untitled)"
	}
	return t.Subject
}
