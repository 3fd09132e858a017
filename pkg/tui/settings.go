package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/termdesk/termdesk/pkg/config"
)

// settingRow is one focusable row on the settings screen.
type settingRow struct {
	id string
}

func (r settingRow) FocusID() string { return r.id }

const (
	rowTheme   = "theme"
	rowAccent  = "accent"
	rowWeather = "weather"
)

// settingsScreen edits a working copy of the settings; nothing persists
// until 's' saves (the weather dialog persists on its own because the
// geocode already cost a network round trip).
type settingsScreen struct {
	shell   *Shell
	keys    KeyMap
	ring    *Ring
	working config.Settings
}

func newSettingsScreen(shell *Shell) *settingsScreen {
	rows := []Focusable{
		settingRow{id: rowTheme},
		settingRow{id: rowAccent},
		settingRow{id: rowWeather},
	}
	return &settingsScreen{
		shell:   shell,
		keys:    DefaultKeyMap(),
		ring:    NewRing(rows),
		working: shell.Cfg.Settings,
	}
}

func (s *settingsScreen) Init() tea.Cmd { return nil }
func (s *settingsScreen) Teardown()     {}

func (s *settingsScreen) Title() string { return "Settings" }

func (s *settingsScreen) Help() string {
	return "↑↓ field  ←→ option  w weather city  s save  r reset  esc back"
}

func (s *settingsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case geocodeResultMsg:
		if msg.err != nil {
			s.shell.Log.Warn("geocoding failed", "city", msg.city, "error", msg.err)
			return setStatus("Weather: " + msg.err.Error())
		}
		s.shell.Cfg.SetWeather(msg.city, msg.loc.Name, msg.loc.Lat, msg.loc.Lon)
		s.working.WeatherCity = msg.city
		s.working.WeatherLabel = msg.loc.Name
		s.working.WeatherLat = msg.loc.Lat
		s.working.WeatherLon = msg.loc.Lon
		if err := s.shell.Cfg.Save(); err != nil {
			return setStatus("Error: " + err.Error())
		}
		return tea.Batch(
			setStatus("Weather set to "+msg.loc.Name),
			func() tea.Msg { return weatherChangedMsg{} },
		)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return nil
}

func (s *settingsScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Back):
		return popScreen()

	case key.Matches(msg, s.keys.Up):
		s.ring.Prev()

	case key.Matches(msg, s.keys.Down), key.Matches(msg, s.keys.Tab):
		s.ring.Next()

	case key.Matches(msg, s.keys.Left):
		s.cycle(-1)

	case key.Matches(msg, s.keys.Right), key.Matches(msg, s.keys.Space):
		s.cycle(1)

	case key.Matches(msg, s.keys.Enter):
		if cur, ok := s.ring.Current(); ok && cur.FocusID() == rowWeather {
			return s.cityDialog()
		}
		s.cycle(1)

	case key.Matches(msg, s.keys.City):
		return s.cityDialog()

	case msg.String() == "s":
		s.shell.Cfg.Settings = s.working
		if err := s.shell.Cfg.Save(); err != nil {
			return setStatus("Error: " + err.Error())
		}
		*s.shell.Theme = *NewTheme(s.working)
		return setStatus("Settings saved")

	case key.Matches(msg, s.keys.Reset):
		if err := s.shell.Cfg.Reset(); err != nil {
			return setStatus("Error: " + err.Error())
		}
		s.working = s.shell.Cfg.Settings
		*s.shell.Theme = *NewTheme(s.working)
		return tea.Batch(
			setStatus("Settings reset to defaults"),
			func() tea.Msg { return weatherChangedMsg{} },
		)
	}
	return nil
}

func (s *settingsScreen) cityDialog() tea.Cmd {
	return openDialog(newInputDialog("Weather City", "e.g. London", s.working.WeatherCity), func(result any) tea.Cmd {
		city, ok := result.(string)
		if !ok {
			return nil
		}
		return tea.Batch(
			setStatus("Looking up "+city+"…"),
			geocodeCity(s.shell.Weather, city),
		)
	})
}

// cycle steps the focused row's value through its option list.
func (s *settingsScreen) cycle(delta int) {
	cur, ok := s.ring.Current()
	if !ok {
		return
	}
	switch cur.FocusID() {
	case rowTheme:
		s.working.Theme = cycleOption(ThemeNames, s.working.Theme, delta)
	case rowAccent:
		s.working.AccentColor = cycleOption(AccentNames, s.working.AccentColor, delta)
	}
}

func cycleOption(options []string, current string, delta int) string {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

func (s *settingsScreen) View(width, height int) string {
	theme := s.shell.Theme

	var b strings.Builder
	b.WriteString(s.renderRow(rowTheme, "Theme", s.renderRadio(ThemeNames, s.working.Theme)))
	b.WriteString(s.renderRow(rowAccent, "Accent", s.renderRadio(AccentNames, s.working.AccentColor)))

	weatherValue := theme.Faint.Render("not set — press enter to choose a city")
	if s.working.WeatherLat != 0 || s.working.WeatherLon != 0 {
		weatherValue = theme.Text.Render(fmt.Sprintf("%s (%.2f, %.2f)",
			s.working.WeatherLabel, s.working.WeatherLat, s.working.WeatherLon))
	}
	b.WriteString(s.renderRow(rowWeather, "Weather", weatherValue))

	if s.working != s.shell.Cfg.Settings {
		b.WriteString("\n")
		b.WriteString(theme.Status.Render("Unsaved changes — press 's' to save"))
	}

	return b.String()
}

func (s *settingsScreen) renderRow(id, label, value string) string {
	theme := s.shell.Theme

	prefix := "  "
	labelStyle := theme.Header
	if cur, ok := s.ring.Current(); ok && cur.FocusID() == id {
		prefix = theme.Selected.Render(IconCursor) + " "
		labelStyle = theme.Title
	}
	return prefix + labelStyle.Render(fmt.Sprintf("%-10s", label)) + value + "\n"
}

func (s *settingsScreen) renderRadio(options []string, selected string) string {
	theme := s.shell.Theme

	var parts []string
	for _, o := range options {
		if o == selected {
			parts = append(parts, theme.Status.Render(IconRadioOn+" "+o))
		} else {
			parts = append(parts, theme.Faint.Render(IconRadio+" "+o))
		}
	}
	return strings.Join(parts, "  ")
}
