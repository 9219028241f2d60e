package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/whatsup/internal/tui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// FabModel is the floating add button, pinned to the right edge.
type FabModel struct {
	width int
	zones *zone.Manager
}

// NewFab creates a floating add button. zones may be nil.
func NewFab(zones *zone.Manager) *FabModel {
	return &FabModel{zones: zones}
}

// SetSize implements Component.
func (f *FabModel) SetSize(width, _ int) {
	f.width = width
}

// View implements Component.
func (f *FabModel) View() string {
	btn := mark(f.zones, ZoneFab, styles.Fab.Render("+"))
	if f.width <= 0 {
		return btn
	}
	return lipgloss.PlaceHorizontal(f.width, lipgloss.Right, btn)
}
