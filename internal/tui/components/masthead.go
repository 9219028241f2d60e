package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/whatsup/internal/task"
	"github.com/hy4ri/whatsup/internal/tui/styles"
)

// MastheadModel renders the screen header: title, progress and the nav bar.
type MastheadModel struct {
	title string
	stats task.Stats
	nav   *NavBarModel
	width int
}

// NewMasthead creates a masthead with the given title and nav bar.
func NewMasthead(title string, nav *NavBarModel) *MastheadModel {
	return &MastheadModel{title: title, nav: nav}
}

// SetData implements DataReceiver.
func (m *MastheadModel) SetData(stats task.Stats) {
	m.stats = stats
}

// SetSize implements Component.
func (m *MastheadModel) SetSize(width, _ int) {
	m.width = width
	m.nav.SetSize(width-styles.Masthead.GetHorizontalFrameSize(), 1)
}

// View implements Component.
func (m *MastheadModel) View() string {
	inner := m.width - styles.Masthead.GetHorizontalFrameSize()

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(m.title),
		styles.Subtitle.Render(progressLine(m.stats)),
		m.nav.View(),
	)
	return styles.Masthead.Width(max(inner, 1)).Render(body)
}

func progressLine(s task.Stats) string {
	switch {
	case s.Total == 0:
		return "Nothing on your plate."
	case s.Open() == 0:
		return fmt.Sprintf("All %d done. Nice!", s.Total)
	default:
		return fmt.Sprintf("%d of %d done", s.Done, s.Total)
	}
}
