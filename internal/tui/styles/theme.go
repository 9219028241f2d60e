package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/whatsup/internal/config"
)

// ApplyTheme forces light or dark colors. "auto" keeps terminal detection.
func ApplyTheme(theme string) {
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	}
}

// ToggleTheme flips between light and dark and returns the new theme name.
func ToggleTheme() string {
	if lipgloss.HasDarkBackground() {
		ApplyTheme(config.ThemeLight)
		return config.ThemeLight
	}
	ApplyTheme(config.ThemeDark)
	return config.ThemeDark
}

// IsDark reports whether dark colors are in use.
func IsDark() bool {
	return lipgloss.HasDarkBackground()
}
