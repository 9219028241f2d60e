// Package tui provides the terminal user interface for the task list.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/whatsup/internal/config"
	"github.com/hy4ri/whatsup/internal/storage"
	"github.com/hy4ri/whatsup/internal/task"
	"github.com/hy4ri/whatsup/internal/tui/logic"
	"github.com/hy4ri/whatsup/internal/tui/state"
	"github.com/hy4ri/whatsup/internal/tui/styles"
	"github.com/hy4ri/whatsup/internal/tui/ui"
	zone "github.com/lrstanley/bubblezone"
)

// Deps are the collaborators the App needs.
type Deps struct {
	Store   *task.Store
	Storage storage.Storage
	Writer  *task.Writer
	Config  *config.Config
	Logger  *log.Logger
	// Zones enables mouse support. May be nil.
	Zones *zone.Manager
}

// App is the main Bubble Tea model for the application.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new App.
func NewApp(ctx context.Context, d Deps) *App {
	styles.ApplyTheme(d.Config.UI.Theme)

	s := state.New(d.Store, d.Storage, d.Writer, d.Config, d.Logger, d.Zones)
	return &App{
		state:    s,
		handler:  logic.NewHandler(ctx, s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
