package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/whatsup/internal/tui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// MenuItem is one nav bar button.
type MenuItem struct {
	Name string
	Icon string
}

// NavBarModel renders a row of menu buttons with one active.
type NavBarModel struct {
	items  []MenuItem
	active string
	width  int
	zones  *zone.Manager
}

// NewNavBar creates a nav bar. zones may be nil.
func NewNavBar(items []MenuItem, zones *zone.Manager) *NavBarModel {
	n := &NavBarModel{items: items, zones: zones}
	if len(items) > 0 {
		n.active = items[0].Name
	}
	return n
}

// SetActive marks the named item active.
func (n *NavBarModel) SetActive(name string) {
	n.active = name
}

// Active returns the active item name.
func (n *NavBarModel) Active() string {
	return n.active
}

// Next returns the item after the active one, wrapping around.
func (n *NavBarModel) Next() string {
	for i, item := range n.items {
		if item.Name == n.active {
			return n.items[(i+1)%len(n.items)].Name
		}
	}
	return n.active
}

// SetSize implements Component.
func (n *NavBarModel) SetSize(width, _ int) {
	n.width = width
}

// View implements Component.
func (n *NavBarModel) View() string {
	buttons := make([]string, 0, len(n.items))
	for _, item := range n.items {
		style := styles.MenuButton
		if item.Name == n.active {
			style = styles.MenuButtonActive
		}
		btn := style.Render(item.Icon + " " + item.Name)
		buttons = append(buttons, mark(n.zones, NavZone(item.Name), btn))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
