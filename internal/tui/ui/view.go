package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/whatsup/internal/tui/components"
	"github.com/hy4ri/whatsup/internal/tui/state"
	"github.com/hy4ri/whatsup/internal/tui/styles"
)

type Renderer struct {
	*state.State

	about aboutCache
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Quitting {
		return ""
	}
	if r.Width == 0 {
		return "Loading..."
	}

	width := max(r.Width-styles.App.GetHorizontalFrameSize(), 1)
	height := max(r.Height-styles.App.GetVerticalFrameSize(), 1)

	r.MastheadComp.SetSize(width, 0)
	r.MastheadComp.SetData(r.Store.Stats())
	masthead := r.MastheadComp.View()

	bottom := r.renderBottom(width)

	// Whatever the masthead and bottom bars leave is the body.
	bodyHeight := max(height-lipgloss.Height(masthead)-lipgloss.Height(bottom), 1)

	var body string
	switch r.CurrentView {
	case state.ViewAbout:
		body = r.renderAbout(width, bodyHeight)
	default:
		body = r.renderTasks(width, bodyHeight)
	}
	body = lipgloss.Place(width, bodyHeight, lipgloss.Left, lipgloss.Top, body)

	out := styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, masthead, body, bottom))
	if r.Zones != nil {
		// Zone markers inflate lipgloss.Width if left in place.
		out = r.Zones.Scan(out)
	}
	return out
}

// renderTasks renders the task list, or a spinner until the first load
// resolves and nothing has been added yet.
func (r *Renderer) renderTasks(width, height int) string {
	if !r.Store.Loaded() && r.Store.Len() == 0 {
		return styles.EmptyHeading.Render(r.Spinner.View() + " Loading tasks…")
	}

	editView := ""
	if r.Store.EditingID() != "" {
		r.EditInput.Width = max(width-12, 1)
		editView = r.EditInput.View()
	}

	r.TaskListComp.SetSize(width, height)
	r.TaskListComp.SetData(components.TaskListData{
		Tasks:     r.Store.Tasks(),
		Cursor:    r.Cursor,
		EditingID: r.Store.EditingID(),
		EditView:  editView,
	})
	return r.TaskListComp.View()
}

// renderBottom stacks the add button, the status line and the key help.
func (r *Renderer) renderBottom(width int) string {
	var parts []string

	if r.CurrentView == state.ViewTasks {
		r.FabComp.SetSize(width, 1)
		parts = append(parts, r.FabComp.View())
	}

	parts = append(parts, r.renderStatusBar(width))

	r.Help.Width = width
	if r.Store.EditingID() != "" {
		parts = append(parts, r.Help.ShortHelpView(r.Keymap.EditingHelp()))
	} else {
		parts = append(parts, r.Help.View(r.Keymap))
	}

	return strings.Join(parts, "\n")
}

func (r *Renderer) renderStatusBar(width int) string {
	if r.StatusMsg == "" {
		return ""
	}
	style := styles.StatusBarText
	switch r.StatusLevel {
	case state.StatusSuccess:
		style = styles.StatusBarSuccess
	case state.StatusError:
		style = styles.StatusBarError
	}
	return style.MaxWidth(width).Render(r.StatusMsg)
}
