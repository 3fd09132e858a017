package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmDialog asks a yes/no question. Result is a bool; every path
// other than "y" answers false.
type confirmDialog struct {
	title   string
	message string
}

func newConfirmDialog(title, message string) *confirmDialog {
	return &confirmDialog{title: title, message: message}
}

func (d *confirmDialog) Init() tea.Cmd { return nil }

func (d *confirmDialog) Update(msg tea.Msg) (tea.Cmd, bool, any) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		return nil, true, true
	case "n", "N", "esc", "enter":
		return nil, true, false
	}
	return nil, false, nil
}

func (d *confirmDialog) View(theme *Theme, width int) string {
	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render(d.title))
	b.WriteString("\n\n")
	b.WriteString(d.message)
	b.WriteString("\n\n")
	b.WriteString(theme.Done.Render("[y]") + " Yes  ")
	b.WriteString(theme.Error.Render("[n]") + " No")
	return theme.Modal.Render(b.String())
}

// inputDialog collects one line of text. Result is the trimmed string on
// enter, nil on cancel. Empty submissions are treated as cancel.
type inputDialog struct {
	title string
	input textinput.Model
}

func newInputDialog(title, placeholder, prefill string) *inputDialog {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 250
	ti.SetValue(prefill)
	ti.Focus()
	return &inputDialog{title: title, input: ti}
}

func (d *inputDialog) Init() tea.Cmd { return textinput.Blink }

func (d *inputDialog) Update(msg tea.Msg) (tea.Cmd, bool, any) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return nil, true, nil
		case tea.KeyEnter:
			value := strings.TrimSpace(d.input.Value())
			if value == "" {
				return nil, true, nil
			}
			return nil, true, value
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd, false, nil
}

func (d *inputDialog) View(theme *Theme, width int) string {
	inputWidth := width / 2
	if inputWidth < 30 {
		inputWidth = 30
	}
	d.input.Width = inputWidth
	d.input.PromptStyle = theme.Prompt

	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render(d.title))
	b.WriteString("\n\n")
	b.WriteString(d.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Footer.Render("enter confirm  esc cancel"))
	return theme.Modal.Render(b.String())
}

// placeOverlay centers a modal in the terminal, leaving the rows above
// and below blank.
func placeOverlay(modal string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
