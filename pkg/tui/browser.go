package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/termdesk/termdesk/pkg/store"
)

// fileItem adapts a listed document to the focus ring.
type fileItem struct {
	info store.FileInfo
}

func (f fileItem) FocusID() string { return f.info.Path }

// browserDialog lists the sandbox documents newest-first and lets the
// user pick one. Result is the selected path string, nil on cancel. The
// list refreshes in place when the directory watcher reports changes,
// keeping focus on the same file when it survives.
type browserDialog struct {
	store *store.Store
	keys  KeyMap
	ring  *Ring
	files []store.FileInfo
	err   error
}

func newBrowserDialog(s *store.Store) *browserDialog {
	d := &browserDialog{store: s, keys: DefaultKeyMap(), ring: NewRing(nil)}
	d.refresh()
	return d
}

func (d *browserDialog) refresh() {
	files, err := d.store.List()
	d.files = files
	d.err = err

	items := make([]Focusable, len(files))
	for i, f := range files {
		items[i] = fileItem{info: f}
	}
	d.ring.Rebuild(items)
}

func (d *browserDialog) Init() tea.Cmd { return nil }

func (d *browserDialog) Update(msg tea.Msg) (tea.Cmd, bool, any) {
	switch msg := msg.(type) {
	case FileChangedMsg:
		d.refresh()
		return nil, false, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyEsc:
			return nil, true, nil
		case msg.Type == tea.KeyEnter:
			cur, ok := d.ring.Current()
			if !ok {
				return nil, true, nil
			}
			return nil, true, cur.(fileItem).info.Path
		case key.Matches(msg, d.keys.Up):
			d.ring.Prev()
		case key.Matches(msg, d.keys.Down):
			d.ring.Next()
		}
	}
	return nil, false, nil
}

func (d *browserDialog) View(theme *Theme, width int) string {
	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render("Open File"))
	b.WriteString("\n\n")

	switch {
	case d.err != nil:
		b.WriteString(theme.Error.Render("Error: " + d.err.Error()))
	case len(d.files) == 0:
		b.WriteString(theme.Faint.Render("No saved files yet."))
	default:
		for i, f := range d.files {
			line := fmt.Sprintf("%-30s %s", f.Name, f.ModTime.Format("2006-01-02 15:04"))
			if i == d.ring.Index() {
				line = theme.Selected.Render(IconCursor + " " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Footer.Render("↑↓ navigate  enter open  esc cancel"))
	return theme.Modal.Render(b.String())
}
