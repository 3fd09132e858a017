package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root Bubble Tea model: a screen stack with the menu at
// the bottom, a dialog stack above it, and the header widgets.
type Model struct {
	shell   *Shell
	keys    KeyMap
	screens []Screen
	dialogs *Stack
	head    *header

	width  int
	height int

	// weatherGen invalidates in-flight fetches and pending refresh ticks
	// whenever the configured location changes.
	weatherGen int

	statusMsg     string
	statusTimeout time.Time
}

// NewModel builds the root model over the shared shell.
func NewModel(shell *Shell) *Model {
	if shell.Theme == nil {
		shell.Theme = NewTheme(shell.Cfg.Settings)
	}
	if shell.Pomodoro == nil {
		shell.Pomodoro = NewPomodoro()
	}
	return &Model{
		shell:   shell,
		keys:    DefaultKeyMap(),
		screens: []Screen{newMenuScreen(shell)},
		dialogs: &Stack{},
		head:    newHeader(),
	}
}

// top returns the active screen. The menu never pops, so the stack is
// never empty.
func (m *Model) top() Screen {
	return m.screens[len(m.screens)-1]
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.WindowSize(),
		m.top().Init(),
		sampleMetrics(),
		tickAfter(metricsInterval, metricsTickMsg{}),
	}
	if m.shell.Cfg.HasWeather() {
		cmds = append(cmds,
			fetchWeather(m.shell.Weather, m.weatherGen, m.shell.Cfg.WeatherLat, m.shell.Cfg.WeatherLon),
			tickAfter(weatherInterval, weatherTickMsg{gen: m.weatherGen}),
		)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, tea.ClearScreen

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.teardownAll()
			return m, tea.Quit
		}
		if m.dialogs.Active() {
			return m, m.updateDialog(msg)
		}
		return m, m.top().Update(msg)

	case pushScreenMsg:
		m.screens = append(m.screens, msg.screen)
		return m, msg.screen.Init()

	case popScreenMsg:
		if len(m.screens) > 1 {
			m.top().Teardown()
			m.screens = m.screens[:len(m.screens)-1]
		}
		return m, nil

	case pushDialogMsg:
		m.dialogs.Push(msg.dialog, msg.onResult)
		return m, msg.dialog.Init()

	case statusMsg:
		m.setStatus(msg.text)
		return m, nil

	case metricsTickMsg:
		m.head.now = time.Now()
		var cmds []tea.Cmd
		if m.shell.Pomodoro.Advance(m.head.now) {
			if m.shell.Pomodoro.Phase == "break" {
				cmds = append(cmds, setStatus("Pomodoro done — take a break"))
			} else {
				cmds = append(cmds, setStatus("Break over — back to work"))
			}
		}
		cmds = append(cmds, sampleMetrics(), tickAfter(metricsInterval, metricsTickMsg{}))
		return m, tea.Batch(cmds...)

	case metricsSampleMsg:
		if msg.err != nil {
			m.head.statsOK = false
			m.shell.Log.Warn("sampling system metrics", "error", msg.err)
			return m, nil
		}
		m.head.stats = msg.stats
		m.head.statsOK = true
		return m, nil

	case autosaveTickMsg:
		// A dialog obscures the editing surface; skip the write but keep
		// the timer alive.
		if m.dialogs.Active() {
			return m, tickAfter(m.shell.Auto.Interval, msg)
		}
		return m, m.top().Update(msg)

	case weatherTickMsg:
		if msg.gen != m.weatherGen || !m.shell.Cfg.HasWeather() {
			return m, nil
		}
		return m, tea.Batch(
			fetchWeather(m.shell.Weather, m.weatherGen, m.shell.Cfg.WeatherLat, m.shell.Cfg.WeatherLon),
			tickAfter(weatherInterval, weatherTickMsg{gen: m.weatherGen}),
		)

	case weatherChangedMsg:
		m.weatherGen++
		m.head.report = nil
		if !m.shell.Cfg.HasWeather() {
			return m, nil
		}
		return m, tea.Batch(
			fetchWeather(m.shell.Weather, m.weatherGen, m.shell.Cfg.WeatherLat, m.shell.Cfg.WeatherLon),
			tickAfter(weatherInterval, weatherTickMsg{gen: m.weatherGen}),
		)

	case weatherResultMsg:
		if msg.gen != m.weatherGen {
			return m, nil
		}
		if msg.err != nil {
			m.shell.Log.Warn("weather refresh failed", "error", msg.err)
			m.setStatus("Weather unavailable")
			return m, nil
		}
		m.head.report = msg.report
		return m, nil
	}

	// Everything else (blink ticks, watcher events, lookup results) goes
	// to the top dialog when one is open, and to the active screen.
	var cmds []tea.Cmd
	if m.dialogs.Active() {
		cmds = append(cmds, m.updateDialog(msg))
	}
	cmds = append(cmds, m.top().Update(msg))
	return m, tea.Batch(cmds...)
}

// updateDialog routes a message to the top dialog, popping it and
// running its continuation when it reports done.
func (m *Model) updateDialog(msg tea.Msg) tea.Cmd {
	dialog, ok := m.dialogs.Top()
	if !ok {
		return nil
	}
	cmd, done, result := dialog.Update(msg)
	if !done {
		return cmd
	}
	cont := m.dialogs.Pop(result)
	return tea.Batch(cmd, cont)
}

func (m *Model) teardownAll() {
	for i := len(m.screens) - 1; i >= 0; i-- {
		m.screens[i].Teardown()
	}
}

func (m *Model) setStatus(text string) {
	m.statusMsg = text
	m.statusTimeout = time.Now().Add(3 * time.Second)
}
