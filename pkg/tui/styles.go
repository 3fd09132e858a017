package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/termdesk/termdesk/pkg/config"
)

// Base palette
var (
	ColorCyan    = lipgloss.Color("#56B6C2")
	ColorGreen   = lipgloss.Color("#25A065")
	ColorBlue    = lipgloss.Color("#4285F4")
	ColorMagenta = lipgloss.Color("#C678DD")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorRed     = lipgloss.Color("#E05252")
	ColorGray    = lipgloss.Color("#626262")
	ColorGrayDim = lipgloss.Color("#404040")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorBlack   = lipgloss.Color("#1A1A1A")

	DarkSelectionBg  = lipgloss.Color("#2D3B4D")
	LightSelectionBg = lipgloss.Color("#D0D8E0")
)

// AccentColors maps the accent_color setting to a palette entry.
var AccentColors = map[string]lipgloss.Color{
	"cyan":    ColorCyan,
	"green":   ColorGreen,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"yellow":  ColorYellow,
}

// AccentNames is the selectable order shown on the settings screen.
var AccentNames = []string{"cyan", "green", "blue", "magenta", "yellow"}

// ThemeNames is the selectable order shown on the settings screen.
var ThemeNames = []string{"dark", "light"}

// Theme holds the styles derived from the current settings. It is
// rebuilt whenever the settings are saved.
type Theme struct {
	Accent lipgloss.Color

	Title    lipgloss.Style
	Header   lipgloss.Style
	Faint    lipgloss.Style
	Text     lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Done     lipgloss.Style
	Selected lipgloss.Style
	Footer   lipgloss.Style

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	Prompt     lipgloss.Style
}

// NewTheme builds a Theme from the persisted settings. Unknown values
// fall back to the defaults.
func NewTheme(s config.Settings) *Theme {
	accent, ok := AccentColors[s.AccentColor]
	if !ok {
		accent = ColorCyan
	}

	fg := ColorWhite
	selectionBg := DarkSelectionBg
	if s.Theme == "light" {
		fg = ColorBlack
		selectionBg = LightSelectionBg
	}

	return &Theme{
		Accent: accent,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Header:   lipgloss.NewStyle().Foreground(ColorGray),
		Faint:    lipgloss.NewStyle().Foreground(ColorGrayDim),
		Text:     lipgloss.NewStyle().Foreground(fg),
		Status:   lipgloss.NewStyle().Foreground(accent),
		Error:    lipgloss.NewStyle().Foreground(ColorRed),
		Done:     lipgloss.NewStyle().Foreground(ColorGreen),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(fg).Background(selectionBg),
		Footer:   lipgloss.NewStyle().Foreground(ColorGray),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Prompt:     lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}

// Icons
const (
	IconDone    = "✓"
	IconPending = "○"
	IconRadioOn = "●"
	IconRadio   = "○"
	IconCursor  = "❯"
)
