package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/whatsup/internal/task"
	"github.com/hy4ri/whatsup/internal/tui/styles"
	"github.com/hy4ri/whatsup/internal/tui/utils"
	zone "github.com/lrstanley/bubblezone"
)

const (
	checkboxWidth = 3 // "[ ]"
	removeGlyph   = "✕"
	placeholder   = "Tap to add a subject"
	emptyHeading  = "No tasks yet"
)

// TaskListData is what the list needs to render one frame.
type TaskListData struct {
	Tasks     []task.Task
	Cursor    int
	EditingID string
	// EditView is the rendered inline editor for the editing row.
	EditView string
}

// TaskListModel renders a scrollable list of task rows.
type TaskListModel struct {
	data          TaskListData
	width, height int
	viewport      viewport.Model
	viewportReady bool
	zones         *zone.Manager
}

// NewTaskList creates a new TaskListModel. zones may be nil.
func NewTaskList(zones *zone.Manager) *TaskListModel {
	return &TaskListModel{zones: zones}
}

// SetData implements DataReceiver.
func (t *TaskListModel) SetData(data TaskListData) {
	t.data = data
	t.data.Cursor = utils.Clamp(data.Cursor, 0, len(data.Tasks)-1)
}

// SetSize implements Component.
func (t *TaskListModel) SetSize(width, height int) {
	t.width = width
	t.height = max(height, 1)

	if !t.viewportReady {
		t.viewport = viewport.New(t.width, t.height)
		t.viewport.Style = lipgloss.NewStyle()
		t.viewportReady = true
	} else {
		t.viewport.Width = t.width
		t.viewport.Height = t.height
	}
}

// View implements Component.
func (t *TaskListModel) View() string {
	if len(t.data.Tasks) == 0 {
		return styles.EmptyHeading.Render(emptyHeading)
	}
	if !t.viewportReady {
		t.SetSize(t.width, len(t.data.Tasks))
	}

	rows := make([]string, len(t.data.Tasks))
	for i, tk := range t.data.Tasks {
		rows[i] = t.renderRow(i, tk)
	}
	t.viewport.SetContent(strings.Join(rows, "\n"))
	t.scrollToCursor()

	return t.viewport.View()
}

// scrollToCursor keeps the cursor row inside the viewport.
func (t *TaskListModel) scrollToCursor() {
	c := t.data.Cursor
	switch {
	case c < t.viewport.YOffset:
		t.viewport.SetYOffset(c)
	case c >= t.viewport.YOffset+t.viewport.Height:
		t.viewport.SetYOffset(c - t.viewport.Height + 1)
	}
}

func (t *TaskListModel) renderRow(i int, tk task.Task) string {
	box := styles.Checkbox.Render("[ ]")
	if tk.Done {
		box = styles.CheckboxDone.Render("[x]")
	}
	box = mark(t.zones, CheckZone(tk.ID), box)

	remove := mark(t.zones, RemoveZone(tk.ID), styles.Remove.Render(removeGlyph))

	// row padding + checkbox + gaps + remove
	labelWidth := t.width - 2 - checkboxWidth - 2 - lipgloss.Width(removeGlyph)
	labelWidth = max(labelWidth, 1)

	var label string
	if tk.ID == t.data.EditingID && t.data.EditView != "" {
		label = styles.EditInput.Render(t.data.EditView)
	} else {
		label = renderSubject(tk, labelWidth)
	}
	label = lipgloss.NewStyle().Width(labelWidth).MaxWidth(labelWidth).Render(label)
	label = mark(t.zones, LabelZone(tk.ID), label)

	line := box + " " + label + " " + remove

	style := styles.TaskItem
	if i == t.data.Cursor {
		style = styles.TaskSelected
	}
	return style.Render(line)
}

func renderSubject(tk task.Task, width int) string {
	if tk.Subject == "" {
		return styles.TaskPlaceholder.Render(utils.TruncateString(placeholder, width))
	}

	subject := utils.TruncateString(tk.Subject, width)
	if tk.Done {
		return styles.TaskDone.Render(subject)
	}
	return subject
}
