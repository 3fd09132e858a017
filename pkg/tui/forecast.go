package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/termdesk/termdesk/pkg/weather"
)

// forecastHours is how many upcoming entries the dialog lists.
const forecastHours = 8

// forecastResultMsg carries the fetch that backs the forecast dialog.
type forecastResultMsg struct {
	report *weather.Report
	err    error
}

// forecastDialog shows current conditions and the next few hours for
// the configured city. The city can be changed and the forecast
// refreshed without leaving the dialog.
type forecastDialog struct {
	shell   *Shell
	report  *weather.Report
	err     error
	loading bool
}

func newForecastDialog(shell *Shell) *forecastDialog {
	return &forecastDialog{shell: shell}
}

func (d *forecastDialog) Init() tea.Cmd {
	if !d.shell.Cfg.HasWeather() {
		return nil
	}
	d.loading = true
	return d.fetch()
}

func (d *forecastDialog) fetch() tea.Cmd {
	client := d.shell.Weather
	lat, lon := d.shell.Cfg.WeatherLat, d.shell.Cfg.WeatherLon
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		report, err := client.Fetch(ctx, lat, lon)
		return forecastResultMsg{report: report, err: err}
	}
}

func (d *forecastDialog) Update(msg tea.Msg) (tea.Cmd, bool, any) {
	switch msg := msg.(type) {
	case forecastResultMsg:
		d.loading = false
		d.report, d.err = msg.report, msg.err
		return nil, false, nil

	case geocodeResultMsg:
		if msg.err != nil {
			d.loading = false
			d.err = msg.err
			return nil, false, nil
		}
		d.shell.Cfg.SetWeather(msg.city, msg.loc.Name, msg.loc.Lat, msg.loc.Lon)
		if err := d.shell.Cfg.Save(); err != nil {
			d.err = err
			return nil, false, nil
		}
		d.err = nil
		d.loading = true
		return tea.Batch(
			d.fetch(),
			func() tea.Msg { return weatherChangedMsg{} },
		), false, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return nil, true, nil
		case "c":
			return d.cityDialog(), false, nil
		case "r":
			if !d.shell.Cfg.HasWeather() {
				return nil, false, nil
			}
			d.loading = true
			return d.fetch(), false, nil
		}
	}
	return nil, false, nil
}

// cityDialog opens the city prompt on top of this dialog; the geocode
// result is delivered back here once the prompt closes.
func (d *forecastDialog) cityDialog() tea.Cmd {
	client := d.shell.Weather
	return openDialog(newInputDialog("Weather City", "e.g. London", d.shell.Cfg.WeatherCity), func(result any) tea.Cmd {
		city, ok := result.(string)
		if !ok {
			return nil
		}
		return geocodeCity(client, city)
	})
}

func (d *forecastDialog) View(theme *Theme, width int) string {
	title := "Weather"
	if d.shell.Cfg.WeatherLabel != "" {
		title = "Weather: " + d.shell.Cfg.WeatherLabel
	}

	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render(title))
	b.WriteString("\n\n")

	switch {
	case !d.shell.Cfg.HasWeather():
		b.WriteString(theme.Faint.Render("No city configured. Press 'c' to choose one."))
	case d.loading:
		b.WriteString(theme.Faint.Render("Fetching forecast…"))
	case d.err != nil:
		b.WriteString(theme.Error.Render("Weather unavailable: " + d.err.Error()))
	case d.report != nil:
		b.WriteString(theme.Text.Render(fmt.Sprintf("Now    %s %.0f°C %s",
			weather.Icon(d.report.Current.Code),
			d.report.Current.Temperature,
			weather.Description(d.report.Current.Code))))
		for _, h := range d.report.Upcoming(forecastHours, time.Now()) {
			b.WriteString("\n")
			b.WriteString(theme.Text.Render(fmt.Sprintf("%s  %s %.0f°C %s",
				h.Time.Format("15:04"),
				weather.Icon(h.Code),
				h.Temperature,
				weather.Description(h.Code))))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Footer.Render("c change city  r refresh  esc close"))
	return theme.Modal.Render(b.String())
}
