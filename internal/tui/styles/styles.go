// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#78716C", Dark: "#A8A29E"}

	// Highlight is the accent color (blue.500 / blue.400)
	Highlight = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}

	// Heading is used for the empty-state heading (blue.800 / darkBlue.700)
	Heading = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#0369A1"}

	// Surface is the screen background (warmGray.50 / primary.900)
	Surface = lipgloss.AdaptiveColor{Light: "#FAFAF9", Dark: "#0C4A6E"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the masthead title
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for the greeting and stats line
	Subtitle = lipgloss.NewStyle().
			Foreground(Subtle)

	// Masthead frames the header block
	Masthead = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	// EmptyHeading is shown instead of the list when it is empty
	EmptyHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(Heading).
			Padding(1, 2)
)

// Task row styles
var (
	// TaskItem is the base style for a task row
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TaskSelected is the style for the row under the cursor
	// NOTE: No vertical padding - rows must stay one line for viewport scrolling
	TaskSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true)

	// TaskDone is for completed subjects
	TaskDone = lipgloss.NewStyle().
			Foreground(Subtle).
			Strikethrough(true)

	// TaskPlaceholder is shown for empty subjects
	TaskPlaceholder = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)

	// Checkbox is the unchecked box
	Checkbox = lipgloss.NewStyle().
			Foreground(Subtle)

	// CheckboxDone is the checked box
	CheckboxDone = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// Remove is the remove affordance
	Remove = lipgloss.NewStyle().
		Foreground(ErrorColor)

	// EditInput frames the inline editor
	EditInput = lipgloss.NewStyle().
			Foreground(Highlight)
)

// Nav bar styles
var (
	// MenuButton is an inactive nav button
	MenuButton = lipgloss.NewStyle().
			Foreground(Highlight).
			Padding(0, 1)

	// MenuButtonActive is the active nav button
	MenuButtonActive = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#EFF6FF", Dark: "#EFF6FF"}).
				Background(Highlight).
				Bold(true).
				Padding(0, 1)
)

// Fab is the floating add button.
var Fab = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(Highlight).
	Bold(true).
	Padding(0, 1)

// StatusBar styles
var (
	// StatusBarText is for status messages
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSeparator is the separator between bindings
	HelpSeparator = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Spinner style
var Spinner = lipgloss.NewStyle().
	Foreground(Highlight)
