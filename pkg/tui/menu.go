package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuEntry is one launcher row.
type menuEntry struct {
	id    string
	label string
	desc  string
}

func (e menuEntry) FocusID() string { return e.id }

// menuScreen is the launcher at the bottom of the screen stack.
type menuScreen struct {
	shell   *Shell
	keys    KeyMap
	ring    *Ring
	entries []menuEntry
}

func newMenuScreen(shell *Shell) *menuScreen {
	entries := []menuEntry{
		{id: "editor", label: "Editor", desc: "distraction-free writing"},
		{id: "tasks", label: "Tasks", desc: "to-do list"},
		{id: "settings", label: "Settings", desc: "theme, accent, weather"},
		{id: "quit", label: "Quit", desc: "leave termdesk"},
	}
	items := make([]Focusable, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	return &menuScreen{
		shell:   shell,
		keys:    DefaultKeyMap(),
		ring:    NewRing(items),
		entries: entries,
	}
}

func (s *menuScreen) Init() tea.Cmd { return nil }
func (s *menuScreen) Teardown()     {}

func (s *menuScreen) Title() string { return "" }

func (s *menuScreen) Help() string {
	return "↑↓ navigate  enter open  p pomodoro  f weather  ctrl+c quit"
}

func (s *menuScreen) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Up):
		s.ring.Prev()
	case key.Matches(keyMsg, s.keys.Down):
		s.ring.Next()
	case key.Matches(keyMsg, s.keys.Timer):
		return openDialog(newPomodoroDialog(s.shell.Pomodoro), nil)
	case key.Matches(keyMsg, s.keys.Forecast):
		return openDialog(newForecastDialog(s.shell), nil)
	case key.Matches(keyMsg, s.keys.Enter):
		cur, ok := s.ring.Current()
		if !ok {
			return nil
		}
		switch cur.(menuEntry).id {
		case "editor":
			return pushScreen(newEditorScreen(s.shell))
		case "tasks":
			return pushScreen(newTasksScreen(s.shell))
		case "settings":
			return pushScreen(newSettingsScreen(s.shell))
		case "quit":
			return tea.Quit
		}
	}
	return nil
}

func (s *menuScreen) View(width, height int) string {
	theme := s.shell.Theme

	var b strings.Builder
	for i, e := range s.entries {
		label := e.label
		desc := theme.Faint.Render("  " + e.desc)
		if i == s.ring.Index() {
			b.WriteString(theme.Selected.Render(IconCursor+" "+label) + desc)
		} else {
			b.WriteString("  " + theme.Text.Render(label) + desc)
		}
		b.WriteString("\n")
	}

	block := b.String()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
