package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/termdesk/termdesk/pkg/autosave"
	"github.com/termdesk/termdesk/pkg/config"
	"github.com/termdesk/termdesk/pkg/store"
	"github.com/termdesk/termdesk/pkg/weather"
)

// Shell bundles the collaborators every screen shares. It is built once
// in main and threaded through the screen constructors.
type Shell struct {
	Cfg     *config.Config
	Store   *store.Store
	Tasks   *store.TaskStore
	Auto    *autosave.Controller
	Weather *weather.Client
	Log     *slog.Logger

	// Filled in by NewModel when left nil.
	Theme    *Theme
	Pomodoro *Pomodoro
}

// Screen is one surface on the navigation stack. Screens mutate
// themselves through pointer receivers; Update returns commands the
// root model runs, including the navigation commands from messages.go.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	Title() string
	Help() string
	Teardown()
}
