package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/termdesk/termdesk/pkg/sysinfo"
	"github.com/termdesk/termdesk/pkg/weather"
)

// FileChangedMsg is sent when the documents-directory watcher detects
// changes.
type FileChangedMsg struct{}

// pushScreenMsg mounts a new screen on top of the stack.
type pushScreenMsg struct {
	screen Screen
}

// popScreenMsg tears down the top screen and returns to the one below.
type popScreenMsg struct{}

// pushDialogMsg opens a dialog above the active screen. onResult runs
// exactly once when the dialog closes.
type pushDialogMsg struct {
	dialog   Dialog
	onResult func(result any) tea.Cmd
}

// statusMsg sets the transient status line.
type statusMsg struct {
	text string
}

// metricsTickMsg fires once a second to refresh the header. The timer
// is root-owned and lives for the whole program, so it needs no
// generation tag.
type metricsTickMsg struct{}

// metricsSampleMsg carries a finished CPU/RAM sample.
type metricsSampleMsg struct {
	stats sysinfo.Stats
	err   error
}

// autosaveTickMsg fires on the autosave interval. gen identifies the
// editor session that armed it; stale generations are dropped.
type autosaveTickMsg struct {
	gen int
}

// weatherTickMsg fires on the weather refresh interval.
type weatherTickMsg struct {
	gen int
}

// weatherResultMsg carries a finished forecast fetch.
type weatherResultMsg struct {
	gen    int
	report *weather.Report
	err    error
}

// weatherChangedMsg tells the root the weather location changed; it
// invalidates in-flight fetches and refetches immediately.
type weatherChangedMsg struct{}

// geocodeResultMsg carries a finished city lookup.
type geocodeResultMsg struct {
	city string
	loc  weather.Location
	err  error
}

func pushScreen(s Screen) tea.Cmd {
	return func() tea.Msg { return pushScreenMsg{screen: s} }
}

func popScreen() tea.Cmd {
	return func() tea.Msg { return popScreenMsg{} }
}

func openDialog(d Dialog, onResult func(any) tea.Cmd) tea.Cmd {
	return func() tea.Msg { return pushDialogMsg{dialog: d, onResult: onResult} }
}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func tickAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
