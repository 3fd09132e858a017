package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelStartsOnMenu(t *testing.T) {
	m := NewModel(newTestShell(t))
	_, ok := m.top().(*menuScreen)
	assert.True(t, ok)
}

func TestModelPushAndPopScreens(t *testing.T) {
	shell := newTestShell(t)
	m := NewModel(shell)

	m.Update(pushScreenMsg{screen: newTasksScreen(shell)})
	_, ok := m.top().(*tasksScreen)
	require.True(t, ok)

	m.Update(popScreenMsg{})
	_, ok = m.top().(*menuScreen)
	assert.True(t, ok)

	// The menu never pops.
	m.Update(popScreenMsg{})
	assert.Len(t, m.screens, 1)
}

func TestModelRoutesKeysToTopDialog(t *testing.T) {
	shell := newTestShell(t)
	m := NewModel(shell)

	delivered := 0
	m.Update(pushDialogMsg{
		dialog: newConfirmDialog("q", "sure?"),
		onResult: func(result any) tea.Cmd {
			delivered++
			assert.Equal(t, true, result)
			return nil
		},
	})
	require.True(t, m.dialogs.Active())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Equal(t, 1, delivered)
	assert.False(t, m.dialogs.Active())
}

func TestModelSkipsAutosaveWhileDialogOpen(t *testing.T) {
	shell := newTestShell(t)
	m := NewModel(shell)

	ed := newEditorScreen(shell)
	m.Update(pushScreenMsg{screen: ed})
	ed.ta.SetValue("draft")

	m.Update(pushDialogMsg{dialog: newConfirmDialog("q", "m")})

	_, cmd := m.Update(autosaveTickMsg{gen: ed.gen})
	assert.NotNil(t, cmd, "tick re-armed while obscured")

	_, ok, err := shell.Store.ReadScratch()
	require.NoError(t, err)
	assert.False(t, ok, "no write while a dialog obscures the editor")
}

func TestModelDropsStaleWeatherResult(t *testing.T) {
	shell := newTestShell(t)
	m := NewModel(shell)

	m.weatherGen = 2
	m.Update(weatherResultMsg{gen: 1, report: nil})
	assert.Nil(t, m.head.report)
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(newTestShell(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModelStatusMessage(t *testing.T) {
	m := NewModel(newTestShell(t))
	m.Update(statusMsg{text: "Saved"})
	assert.Equal(t, "Saved", m.statusMsg)
}

func TestBrowserRefreshKeepsFocus(t *testing.T) {
	shell := newTestShell(t)
	_, err := shell.Store.Save("alpha", "a")
	require.NoError(t, err)
	target, err := shell.Store.Save("beta", "b")
	require.NoError(t, err)

	d := newBrowserDialog(shell.Store)
	d.ring.Focus(target)

	// A new file appearing reorders the list; focus stays on beta.
	_, err = shell.Store.Save("gamma", "c")
	require.NoError(t, err)
	d.Update(FileChangedMsg{})

	cur, ok := d.ring.Current()
	require.True(t, ok)
	assert.Equal(t, target, cur.FocusID())
}

func TestBrowserCancel(t *testing.T) {
	shell := newTestShell(t)
	d := newBrowserDialog(shell.Store)

	_, done, result := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, done)
	assert.Nil(t, result)
}

func TestBrowserEnterOnEmptyListCancels(t *testing.T) {
	shell := newTestShell(t)
	d := newBrowserDialog(shell.Store)

	_, done, result := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, done)
	assert.Nil(t, result)
}
