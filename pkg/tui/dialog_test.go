package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackDeliversResultExactlyOnce(t *testing.T) {
	s := &Stack{}

	calls := 0
	var got any
	s.Push(newConfirmDialog("t", "m"), func(result any) tea.Cmd {
		calls++
		got = result
		return nil
	})

	s.Pop(true)
	assert.Equal(t, 1, calls)
	assert.Equal(t, true, got)

	// The frame is gone; popping again delivers nothing.
	s.Pop(false)
	assert.Equal(t, 1, calls)
	assert.False(t, s.Active())
}

func TestStackPopOrder(t *testing.T) {
	s := &Stack{}

	var order []string
	s.Push(newConfirmDialog("outer", ""), func(any) tea.Cmd {
		order = append(order, "outer")
		return nil
	})
	s.Push(newConfirmDialog("inner", ""), func(any) tea.Cmd {
		order = append(order, "inner")
		return nil
	})

	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, "inner", top.(*confirmDialog).title)

	s.Pop(nil)
	s.Pop(nil)
	assert.Equal(t, []string{"inner", "outer"}, order)
}

func TestStackContinuationMayPushAnotherDialog(t *testing.T) {
	s := &Stack{}

	s.Push(newConfirmDialog("first", ""), func(result any) tea.Cmd {
		// Simulates an unsaved-changes chain: the answer to the first
		// question opens a second dialog.
		s.Push(newConfirmDialog("second", ""), nil)
		return nil
	})

	s.Pop(true)
	assert.True(t, s.Active())
	top, _ := s.Top()
	assert.Equal(t, "second", top.(*confirmDialog).title)
}

func TestStackNilContinuation(t *testing.T) {
	s := &Stack{}
	s.Push(newConfirmDialog("t", ""), nil)
	assert.Nil(t, s.Pop(true))
	assert.False(t, s.Active())
}

func TestConfirmDialogAnswers(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"esc", false},
		{"enter", false},
	}

	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			d := newConfirmDialog("t", "m")
			var msg tea.KeyMsg
			switch tc.key {
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "enter":
				msg = tea.KeyMsg{Type: tea.KeyEnter}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)}
			}
			_, done, result := d.Update(msg)
			require.True(t, done)
			assert.Equal(t, tc.want, result)
		})
	}
}

func TestConfirmDialogIgnoresOtherKeys(t *testing.T) {
	d := newConfirmDialog("t", "m")
	_, done, _ := d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.False(t, done)
}

func TestInputDialogSubmitAndCancel(t *testing.T) {
	d := newInputDialog("t", "p", "prefill")
	_, done, result := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, done)
	assert.Equal(t, "prefill", result)

	d = newInputDialog("t", "p", "")
	_, done, result = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, done)
	assert.Nil(t, result)
}

func TestInputDialogEmptySubmitIsCancel(t *testing.T) {
	d := newInputDialog("t", "p", "   ")
	_, done, result := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, done)
	assert.Nil(t, result)
}
