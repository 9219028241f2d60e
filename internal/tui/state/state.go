// Package state holds the TUI state shared by the logic and ui packages.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/whatsup/internal/config"
	"github.com/hy4ri/whatsup/internal/storage"
	"github.com/hy4ri/whatsup/internal/task"
	"github.com/hy4ri/whatsup/internal/tui/components"
	"github.com/hy4ri/whatsup/internal/tui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// View represents the current screen.
type View int

const (
	ViewTasks View = iota
	ViewAbout
)

// StatusLevel picks the status bar style.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusError
)

// Nav bar item names.
const (
	NavTasks = "Tasks"
	NavAbout = "About"
)

// Name returns the nav bar item for the view.
func (v View) Name() string {
	if v == ViewAbout {
		return NavAbout
	}
	return NavTasks
}

// ViewByName maps a nav bar item back to its view.
func ViewByName(name string) View {
	if name == NavAbout {
		return ViewAbout
	}
	return ViewTasks
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Store   *task.Store
	Storage storage.Storage
	Writer  *task.Writer
	Config  *config.Config
	Logger  *log.Logger

	// View state
	CurrentView View
	Theme       string

	// List state
	Cursor int

	// UI state
	StatusMsg   string
	StatusLevel StatusLevel
	Width       int
	Height      int
	Quitting    bool

	// Components
	Spinner   spinner.Model
	EditInput textinput.Model
	Help      help.Model
	Keymap    KeyMap
	KeyState  *KeyState
	Zones     *zone.Manager

	// UI Components
	NavComp      *components.NavBarModel
	MastheadComp *components.MastheadModel
	TaskListComp *components.TaskListModel
	FabComp      *components.FabModel
}

// New builds the initial state. zones may be nil (no mouse support).
func New(store *task.Store, st storage.Storage, writer *task.Writer, cfg *config.Config, logger *log.Logger, zones *zone.Manager) *State {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "What needs doing?"
	input.CharLimit = 200

	nav := components.NewNavBar([]components.MenuItem{
		{Name: NavTasks, Icon: "☑"},
		{Name: NavAbout, Icon: "ℹ"},
	}, zones)

	taskList := components.NewTaskList(zones)

	hm := help.New()
	hm.Styles.ShortKey = styles.HelpKey
	hm.Styles.FullKey = styles.HelpKey
	hm.Styles.ShortDesc = styles.HelpDesc
	hm.Styles.FullDesc = styles.HelpDesc
	hm.Styles.ShortSeparator = styles.HelpSeparator
	hm.Styles.FullSeparator = styles.HelpSeparator

	return &State{
		Store:        store,
		Storage:      st,
		Writer:       writer,
		Config:       cfg,
		Logger:       logger,
		CurrentView:  ViewTasks,
		Theme:        cfg.UI.Theme,
		Spinner:      s,
		EditInput:    input,
		Help:         hm,
		Keymap:       DefaultKeyMap(),
		KeyState:     &KeyState{},
		Zones:        zones,
		NavComp:      nav,
		MastheadComp: components.NewMasthead(cfg.UI.Title, nav),
		TaskListComp: taskList,
		FabComp:      components.NewFab(zones),
	}
}

// SelectedTask returns the task under the cursor.
func (s *State) SelectedTask() (task.Task, bool) {
	tasks := s.Store.Tasks()
	if s.Cursor < 0 || s.Cursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[s.Cursor], true
}
