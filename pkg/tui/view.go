package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const minWidth = 40
const minHeight = 10

// View implements tea.Model.
func (m *Model) View() string {
	w := m.width
	h := m.height
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}

	theme := m.shell.Theme
	screen := m.top()

	headerLine := m.head.render(theme, w, screen.Title(), m.shell.Cfg.WeatherLabel, m.shell.Pomodoro)
	separator := theme.Faint.Render(strings.Repeat("─", w))
	footer := m.renderFooter(w)

	contentHeight := h - 4 // header, two separators, footer
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	if dialog, ok := m.dialogs.Top(); ok {
		content = placeOverlay(dialog.View(theme, w), w, contentHeight)
	} else {
		content = screen.View(w, contentHeight)
	}
	content = fitHeight(content, contentHeight)

	var b strings.Builder
	b.WriteString(headerLine)
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

func (m *Model) renderFooter(width int) string {
	theme := m.shell.Theme

	help := m.top().Help()
	if m.dialogs.Active() {
		help = "dialog open — see prompts above"
	}
	left := theme.Footer.Render(help)

	right := ""
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		right = theme.Status.Render(m.statusMsg)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// fitHeight pads or truncates a block to exactly the given line count.
func fitHeight(block string, height int) string {
	lines := strings.Split(block, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
