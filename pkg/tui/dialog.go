package tui

import tea "github.com/charmbracelet/bubbletea"

// Dialog is a modal surface rendered above the active screen. The screen
// below stays mounted but receives no input while a dialog is open.
//
// Update reports done=true when the dialog has produced its result;
// every dialog must have a cancel path (usually esc) that reports done
// with its cancelled value.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (cmd tea.Cmd, done bool, result any)
	View(theme *Theme, width int) string
}

// dialogFrame pairs a dialog with its one-shot continuation.
type dialogFrame struct {
	dialog   Dialog
	onResult func(result any) tea.Cmd
}

// Stack holds the open dialogs, innermost last. Frames are single-use:
// Pop removes the frame before running its continuation, so a
// continuation that opens another dialog cannot re-trigger itself.
type Stack struct {
	frames []dialogFrame
}

// Active reports whether any dialog is open.
func (s *Stack) Active() bool { return len(s.frames) > 0 }

// Top returns the topmost dialog.
func (s *Stack) Top() (Dialog, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}
	return s.frames[len(s.frames)-1].dialog, true
}

// Push opens a dialog. onResult may be nil for fire-and-forget dialogs.
func (s *Stack) Push(d Dialog, onResult func(any) tea.Cmd) {
	s.frames = append(s.frames, dialogFrame{dialog: d, onResult: onResult})
}

// Pop closes the top dialog and delivers result to its continuation
// exactly once, returning the continuation's command.
func (s *Stack) Pop(result any) tea.Cmd {
	if len(s.frames) == 0 {
		return nil
	}
	frame := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	if frame.onResult == nil {
		return nil
	}
	return frame.onResult(result)
}
