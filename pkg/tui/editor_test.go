package tui

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termdesk/termdesk/pkg/autosave"
	"github.com/termdesk/termdesk/pkg/config"
	"github.com/termdesk/termdesk/pkg/store"
	"github.com/termdesk/termdesk/pkg/weather"
)

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	docs, err := store.NewStore(filepath.Join(dir, "notes"))
	require.NoError(t, err)
	cfg := config.Load(dir, logger)

	return &Shell{
		Cfg:      cfg,
		Store:    docs,
		Tasks:    store.NewTaskStore(filepath.Join(dir, "tasks.json"), logger),
		Auto:     autosave.New(docs, logger),
		Weather:  weather.NewClient(),
		Log:      logger,
		Theme:    NewTheme(cfg.Settings),
		Pomodoro: NewPomodoro(),
	}
}

func keyCtrl(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// answerDialog extracts the dialog pushed by cmd, feeds it the given
// key, and runs its continuation with the dialog's result.
func answerDialog(t *testing.T, cmd tea.Cmd, key tea.KeyMsg) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(pushDialogMsg)
	require.True(t, ok, "expected a dialog")

	_, done, result := msg.dialog.Update(key)
	require.True(t, done, "dialog did not close")
	if msg.onResult == nil {
		return nil
	}
	return msg.onResult(result)
}

func TestEditorSaveAsScenario(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)

	assert.False(t, ed.dirty())
	assert.Equal(t, "untitled", ed.Title())

	ed.ta.SetValue("hello world")
	assert.True(t, ed.dirty())
	assert.Equal(t, "untitled *", ed.Title())

	// Ctrl+S on an unnamed document prompts for a name.
	cmd := ed.Update(keyCtrl(tea.KeyCtrlS))
	msg, ok := cmd().(pushDialogMsg)
	require.True(t, ok)
	dlg := msg.dialog.(*inputDialog)
	dlg.input.SetValue("report")

	_, done, result := dlg.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, done)
	cont := msg.onResult(result)
	status, ok := cont().(statusMsg)
	require.True(t, ok)
	assert.Equal(t, "Saved report.md", status.text)

	assert.False(t, ed.dirty())
	assert.Equal(t, "report.md", ed.Title())

	content, err := shell.Store.Open(ed.path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)
}

func TestEditorSaveNamedWritesDirectly(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)

	path, err := shell.Store.Save("doc", "v1")
	require.NoError(t, err)
	ed.path = path
	ed.original = "v1"
	ed.ta.SetValue("v2")

	cmd := ed.Update(keyCtrl(tea.KeyCtrlS))
	status, ok := cmd().(statusMsg)
	require.True(t, ok)
	assert.Equal(t, "Saved doc.md", status.text)

	content, err := shell.Store.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", content)
	assert.False(t, ed.dirty())
}

func TestEditorUnsavedChangesGuard(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)
	ed.ta.SetValue("precious work")

	// Declining keeps the buffer and stays on the editor.
	cmd := ed.Update(keyCtrl(tea.KeyEsc))
	cont := answerDialog(t, cmd, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Nil(t, cont)
	assert.Equal(t, "precious work", ed.ta.Value())

	// Confirming pops the screen.
	cmd = ed.Update(keyCtrl(tea.KeyEsc))
	cont = answerDialog(t, cmd, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cont)
	_, ok := cont().(popScreenMsg)
	assert.True(t, ok)
}

func TestEditorCleanBackSkipsConfirm(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)

	cmd := ed.Update(keyCtrl(tea.KeyEsc))
	require.NotNil(t, cmd)
	_, ok := cmd().(popScreenMsg)
	assert.True(t, ok)
}

func TestEditorOpenFlow(t *testing.T) {
	shell := newTestShell(t)
	path, err := shell.Store.Save("existing", "stored content")
	require.NoError(t, err)

	ed := newEditorScreen(shell)
	cmd := ed.Update(keyCtrl(tea.KeyCtrlO))
	cont := answerDialog(t, cmd, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cont)
	cont()

	assert.Equal(t, path, ed.path)
	assert.Equal(t, "stored content", ed.ta.Value())
	assert.False(t, ed.dirty())
}

func TestEditorNewResetsBuffer(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)
	ed.ta.SetValue("scribbles")

	cmd := ed.Update(keyCtrl(tea.KeyCtrlN))
	cont := answerDialog(t, cmd, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cont)
	cont()

	assert.Empty(t, ed.ta.Value())
	assert.Empty(t, ed.path)
	assert.False(t, ed.dirty())
}

func TestEditorRenameRequiresName(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)

	cmd := ed.Update(keyCtrl(tea.KeyCtrlR))
	status, ok := cmd().(statusMsg)
	require.True(t, ok)
	assert.Contains(t, status.text, "Save the file")
}

func TestEditorRename(t *testing.T) {
	shell := newTestShell(t)
	path, err := shell.Store.Save("before", "x")
	require.NoError(t, err)

	ed := newEditorScreen(shell)
	ed.path = path
	ed.original = "x"
	ed.ta.SetValue("x")

	cmd := ed.Update(keyCtrl(tea.KeyCtrlR))
	msg := cmd().(pushDialogMsg)
	dlg := msg.dialog.(*inputDialog)
	assert.Equal(t, "before", dlg.input.Value())
	dlg.input.SetValue("after")
	_, done, result := dlg.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, done)
	msg.onResult(result)()

	assert.Equal(t, "after.md", filepath.Base(ed.path))
}

func TestEditorTabInsertsSpaces(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)

	ed.Update(keyCtrl(tea.KeyTab))
	assert.Equal(t, "    ", ed.ta.Value())
}

func TestEditorAutosaveTick(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)
	ed.ta.SetValue("unsaved draft")

	cmd := ed.Update(autosaveTickMsg{gen: ed.gen})
	assert.NotNil(t, cmd, "tick should re-arm")

	content, ok, err := shell.Store.ReadScratch()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "unsaved draft", content)
}

func TestEditorNamedAutosaveClearsDirty(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)

	path, err := shell.Store.Save("doc", "v1")
	require.NoError(t, err)
	ed.path = path
	ed.original = "v1"
	ed.ta.SetValue("v2")
	require.True(t, ed.dirty())

	cmd := ed.Update(autosaveTickMsg{gen: ed.gen})
	assert.NotNil(t, cmd, "tick should re-arm")

	content, err := shell.Store.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", content)
	assert.False(t, ed.dirty(), "autosaved buffer matches disk")
	assert.Equal(t, "doc.md", ed.Title())
}

func TestEditorUndoRestoresPreviousContent(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)

	ed.Update(keyRunes("a"))
	ed.Update(keyRunes("b"))
	assert.Equal(t, "ab", ed.ta.Value())

	ed.Update(keyCtrl(tea.KeyCtrlZ))
	assert.Equal(t, "a", ed.ta.Value())
	ed.Update(keyCtrl(tea.KeyCtrlZ))
	assert.Empty(t, ed.ta.Value())
	assert.False(t, ed.dirty())

	// Nothing left to undo.
	ed.Update(keyCtrl(tea.KeyCtrlZ))
	assert.Empty(t, ed.ta.Value())
}

func TestEditorUndoBackToSavedIsClean(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)

	path, err := shell.Store.Save("doc", "v1")
	require.NoError(t, err)
	ed.path = path
	ed.original = "v1"
	ed.ta.SetValue("v1")

	ed.Update(keyRunes("x"))
	require.True(t, ed.dirty())

	ed.Update(keyCtrl(tea.KeyCtrlZ))
	assert.Equal(t, "v1", ed.ta.Value())
	assert.False(t, ed.dirty())
}

func TestEditorRedo(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)

	ed.Update(keyRunes("a"))
	ed.Update(keyRunes("b"))
	ed.Update(keyCtrl(tea.KeyCtrlZ))
	assert.Equal(t, "a", ed.ta.Value())

	ed.Update(keyCtrl(tea.KeyCtrlY))
	assert.Equal(t, "ab", ed.ta.Value())

	// A fresh edit discards the redo branch.
	ed.Update(keyCtrl(tea.KeyCtrlZ))
	ed.Update(keyRunes("c"))
	ed.Update(keyCtrl(tea.KeyCtrlY))
	assert.Equal(t, "ac", ed.ta.Value())
}

func TestEditorStaleAutosaveTickDropped(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)
	ed.ta.SetValue("content")

	cmd := ed.Update(autosaveTickMsg{gen: ed.gen - 1})
	assert.Nil(t, cmd)

	_, ok, err := shell.Store.ReadScratch()
	require.NoError(t, err)
	assert.False(t, ok, "stale tick must not write")
}

func TestEditorRecoversScratchOnStartup(t *testing.T) {
	shell := newTestShell(t)
	require.NoError(t, shell.Store.WriteScratch("crashed draft"))

	ed := newEditorScreen(shell)
	assert.Equal(t, "crashed draft", ed.ta.Value())
	assert.True(t, ed.dirty())
	assert.Empty(t, ed.path)

	// The scratch entry survives recovery; a named save retires it.
	content, ok, err := shell.Store.ReadScratch()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "crashed draft", content)

	cmd := ed.Update(keyCtrl(tea.KeyCtrlS))
	msg := cmd().(pushDialogMsg)
	dlg := msg.dialog.(*inputDialog)
	dlg.input.SetValue("rescued")
	_, done, result := dlg.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, done)
	msg.onResult(result)()

	_, ok, err = shell.Store.ReadScratch()
	require.NoError(t, err)
	assert.False(t, ok, "scratch cleared after named save")
}

func TestEditorTeardownFlushes(t *testing.T) {
	shell := newTestShell(t)
	ed := newEditorScreen(shell)
	ed.ta.SetValue("last words")

	ed.Teardown()

	content, ok, err := shell.Store.ReadScratch()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "last words", content)
}
