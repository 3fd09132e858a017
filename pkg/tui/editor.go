package tui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/termdesk/termdesk/pkg/autosave"
)

const tabSpaces = "    "

// undoDepth bounds the per-session edit history.
const undoDepth = 200

// editorGen distinguishes editor sessions so autosave ticks armed by a
// closed session are dropped. The update loop is single-threaded.
var editorGen int

// editorScreen is the distraction-free editor. A document is dirty when
// the buffer differs from the last saved content, and named once it has
// a path inside the sandbox.
type editorScreen struct {
	shell *Shell
	keys  KeyMap
	ta    textarea.Model

	path     string // empty while unnamed
	original string // last saved content, "" for a fresh buffer
	gen      int

	undo []string // buffer snapshots, oldest first
	redo []string
}

func newEditorScreen(shell *Shell) *editorScreen {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Placeholder = "Start typing…"
	ta.CharLimit = 0
	ta.Focus()

	editorGen++
	s := &editorScreen{
		shell: shell,
		keys:  DefaultKeyMap(),
		ta:    ta,
		gen:   editorGen,
	}

	// A leftover scratch entry means a previous session went down with
	// unsaved work; load it as a dirty unnamed draft.
	if content, ok := shell.Auto.Recover(); ok {
		s.ta.SetValue(content)
	}
	return s
}

func (s *editorScreen) dirty() bool {
	return s.ta.Value() != s.original
}

func (s *editorScreen) name() string {
	if s.path == "" {
		return "untitled"
	}
	return filepath.Base(s.path)
}

func (s *editorScreen) snapshot() autosave.Snapshot {
	return autosave.Snapshot{Path: s.path, Content: s.ta.Value()}
}

func (s *editorScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textarea.Blink,
		tickAfter(s.shell.Auto.Interval, autosaveTickMsg{gen: s.gen}),
	}
	if s.dirty() {
		cmds = append(cmds, setStatus("Recovered unsaved draft"))
	}
	return tea.Batch(cmds...)
}

// Teardown makes one last persistence attempt. Failures are logged by
// the controller and never block leaving the editor.
func (s *editorScreen) Teardown() {
	s.shell.Auto.Flush(s.snapshot())
}

func (s *editorScreen) Title() string {
	title := s.name()
	if s.dirty() {
		title += " *"
	}
	return title
}

func (s *editorScreen) Help() string {
	return "ctrl+s save  ctrl+o open  ctrl+n new  ctrl+z undo  ctrl+r rename  esc back"
}

func (s *editorScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case autosaveTickMsg:
		if msg.gen != s.gen {
			return nil
		}
		snap := s.snapshot()
		result, err := s.shell.Auto.Tick(snap)
		if err != nil {
			s.shell.Log.Error("autosave failed", "file", s.name(), "error", err)
		}
		// A direct file write persisted the buffer; the document is no
		// longer modified relative to disk.
		if result == autosave.SavedFile {
			s.original = snap.Content
		}
		return tickAfter(s.shell.Auto.Interval, autosaveTickMsg{gen: s.gen})

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forward(msg)
}

func (s *editorScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Save):
		return s.saveCmd()

	case key.Matches(msg, s.keys.Open):
		return s.guardDirty("Open another file?", s.openBrowser)

	case key.Matches(msg, s.keys.New):
		return s.guardDirty("Start a new file?", func() tea.Cmd {
			s.reset()
			return setStatus("New file")
		})

	case key.Matches(msg, s.keys.Rename):
		return s.renameCmd()

	case key.Matches(msg, s.keys.Back):
		return s.guardDirty("Leave the editor?", popScreen)

	case key.Matches(msg, s.keys.Undo):
		if n := len(s.undo); n > 0 {
			s.redo = append(s.redo, s.ta.Value())
			s.ta.SetValue(s.undo[n-1])
			s.undo = s.undo[:n-1]
		}
		return nil

	case key.Matches(msg, s.keys.Redo):
		if n := len(s.redo); n > 0 {
			s.undo = append(s.undo, s.ta.Value())
			s.ta.SetValue(s.redo[n-1])
			s.redo = s.redo[:n-1]
		}
		return nil

	case key.Matches(msg, s.keys.Tab):
		s.pushUndo(s.ta.Value())
		s.ta.InsertString(tabSpaces)
		return nil
	}

	return s.forward(msg)
}

// forward hands a message to the textarea, snapshotting the buffer for
// undo whenever the message changed it.
func (s *editorScreen) forward(msg tea.Msg) tea.Cmd {
	before := s.ta.Value()
	var cmd tea.Cmd
	s.ta, cmd = s.ta.Update(msg)
	if s.ta.Value() != before {
		s.pushUndo(before)
	}
	return cmd
}

// pushUndo records a pre-edit snapshot. A fresh edit invalidates the
// redo branch.
func (s *editorScreen) pushUndo(before string) {
	s.undo = append(s.undo, before)
	if len(s.undo) > undoDepth {
		s.undo = s.undo[1:]
	}
	s.redo = nil
}

// guardDirty runs proceed directly when the buffer is clean, otherwise
// asks first. Declining keeps the buffer untouched.
func (s *editorScreen) guardDirty(question string, proceed func() tea.Cmd) tea.Cmd {
	if !s.dirty() {
		return proceed()
	}
	return openDialog(newConfirmDialog("Unsaved Changes", question+" Unsaved changes will be lost."), func(result any) tea.Cmd {
		if yes, _ := result.(bool); !yes {
			return nil
		}
		return proceed()
	})
}

func (s *editorScreen) saveCmd() tea.Cmd {
	if s.path != "" {
		if err := s.shell.Store.Write(s.path, s.ta.Value()); err != nil {
			return setStatus("Error: " + err.Error())
		}
		s.original = s.ta.Value()
		return setStatus("Saved " + s.name())
	}

	return openDialog(newInputDialog("Save As", "filename", ""), func(result any) tea.Cmd {
		name, ok := result.(string)
		if !ok {
			return nil
		}
		path, err := s.shell.Store.Save(name, s.ta.Value())
		if err != nil {
			return setStatus("Error: " + err.Error())
		}
		s.path = path
		s.original = s.ta.Value()
		// The draft now lives in a real file; retire the scratch copy.
		if err := s.shell.Auto.ClearScratch(); err != nil {
			s.shell.Log.Warn("clearing scratch after save", "error", err)
		}
		return setStatus("Saved " + s.name())
	})
}

func (s *editorScreen) openBrowser() tea.Cmd {
	return openDialog(newBrowserDialog(s.shell.Store), func(result any) tea.Cmd {
		path, ok := result.(string)
		if !ok {
			return nil
		}
		content, err := s.shell.Store.Open(path)
		if err != nil {
			return setStatus("Error: " + err.Error())
		}
		s.ta.SetValue(content)
		s.path = path
		s.original = content
		s.undo, s.redo = nil, nil
		return setStatus("Opened " + s.name())
	})
}

func (s *editorScreen) renameCmd() tea.Cmd {
	if s.path == "" {
		return setStatus("Save the file before renaming")
	}
	stem := s.name()
	stem = stem[:len(stem)-len(filepath.Ext(stem))]

	return openDialog(newInputDialog("Rename", "new name", stem), func(result any) tea.Cmd {
		name, ok := result.(string)
		if !ok {
			return nil
		}
		newPath, err := s.shell.Store.Rename(s.path, name)
		if err != nil {
			return setStatus("Error: " + err.Error())
		}
		s.path = newPath
		return setStatus("Renamed to " + s.name())
	})
}

func (s *editorScreen) reset() {
	s.ta.Reset()
	s.path = ""
	s.original = ""
	s.undo, s.redo = nil, nil
}

func (s *editorScreen) View(width, height int) string {
	s.ta.SetWidth(width)
	s.ta.SetHeight(height - 1)

	pathLine := s.shell.Theme.Faint.Render(s.shell.Store.Root)
	if s.path != "" {
		pathLine = s.shell.Theme.Faint.Render(s.path)
	}
	return s.ta.View() + "\n" + pathLine
}
