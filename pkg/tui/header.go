package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/termdesk/termdesk/pkg/sysinfo"
	"github.com/termdesk/termdesk/pkg/weather"
)

const (
	metricsInterval = time.Second
	weatherInterval = 10 * time.Minute
)

// header holds the top-bar widget state owned by the root model.
type header struct {
	stats   sysinfo.Stats
	statsOK bool
	now     time.Time
	report  *weather.Report
}

func newHeader() *header {
	return &header{now: time.Now()}
}

// sampleMetrics runs the gopsutil sample off the update loop.
func sampleMetrics() tea.Cmd {
	return func() tea.Msg {
		stats, err := sysinfo.Sample()
		return metricsSampleMsg{stats: stats, err: err}
	}
}

// fetchWeather fetches a forecast in the background. gen identifies the
// weather configuration the fetch belongs to.
func fetchWeather(client *weather.Client, gen int, lat, lon float64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		report, err := client.Fetch(ctx, lat, lon)
		return weatherResultMsg{gen: gen, report: report, err: err}
	}
}

// geocodeCity resolves a typed city name in the background.
func geocodeCity(client *weather.Client, city string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		loc, err := client.Geocode(ctx, city)
		return geocodeResultMsg{city: city, loc: loc, err: err}
	}
}

// render draws the one-line header bar: app title and screen name on the
// left, widgets on the right.
func (h *header) render(theme *Theme, width int, screenTitle, weatherLabel string, pom *Pomodoro) string {
	left := theme.Title.Render("termdesk")
	if screenTitle != "" {
		left += theme.Header.Render(" › " + screenTitle)
	}

	var widgets []string
	if h.statsOK {
		widgets = append(widgets,
			fmt.Sprintf("CPU %3.0f%%", h.stats.CPUPercent),
			fmt.Sprintf("RAM %3.0f%%", h.stats.RAMPercent))
	}
	if h.report != nil {
		w := fmt.Sprintf("%s %.0f°C %s",
			weather.Icon(h.report.Current.Code),
			h.report.Current.Temperature,
			weather.Description(h.report.Current.Code))
		if weatherLabel != "" {
			w = weatherLabel + " " + w
		}
		widgets = append(widgets, w)
	}
	if pom.Active() {
		widgets = append(widgets, pom.Label(h.now))
	}
	widgets = append(widgets, h.now.Format("15:04:05"))

	right := theme.Header.Render(strings.Join(widgets, "  │  "))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
