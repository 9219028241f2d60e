package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/whatsup/internal/tui/components"
	"github.com/hy4ri/whatsup/internal/tui/state"
)

func (h *Handler) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if h.CurrentView == state.ViewTasks && h.Store.EditingID() == "" {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			h.moveCursor(-1)
			return nil
		case tea.MouseButtonWheelDown:
			h.moveCursor(1)
			return nil
		}
	}

	// Only handle clicks
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if h.Zones == nil {
		return nil
	}

	for _, id := range h.clickableZones() {
		if h.Zones.Get(id).InBounds(msg) {
			return h.handleClick(id)
		}
	}
	return nil
}

// clickableZones lists the zones rendered in the current view.
func (h *Handler) clickableZones() []string {
	ids := []string{
		components.NavZone(state.NavTasks),
		components.NavZone(state.NavAbout),
	}
	if h.CurrentView != state.ViewTasks {
		return ids
	}

	ids = append(ids, components.ZoneFab)
	for _, t := range h.Store.Tasks() {
		ids = append(ids,
			components.CheckZone(t.ID),
			components.LabelZone(t.ID),
			components.RemoveZone(t.ID),
		)
	}
	return ids
}

// handleClick performs the action bound to a zone.
func (h *Handler) handleClick(zoneID string) tea.Cmd {
	action, arg := components.ParseZone(zoneID)
	h.KeyState.Reset()

	// A click anywhere outside the editing row's label ends editing.
	if editing := h.Store.EditingID(); editing != "" && zoneID != components.LabelZone(editing) {
		h.finishEditing(editing)
	}

	switch action {
	case components.ZoneNav:
		h.setView(state.ViewByName(arg))
	case components.ZoneAdd:
		return h.addTask()
	case components.ZoneToggle:
		h.selectTask(arg)
		return h.toggleTask(arg)
	case components.ZoneEdit:
		h.selectTask(arg)
		if h.Store.IsEditing(arg) {
			return nil
		}
		if t, ok := h.Store.Task(arg); ok {
			return h.startEditing(t)
		}
	case components.ZoneRemove:
		return h.removeTask(arg)
	}
	return nil
}

func (h *Handler) selectTask(id string) {
	for i, t := range h.Store.Tasks() {
		if t.ID == id {
			h.Cursor = i
			return
		}
	}
}
