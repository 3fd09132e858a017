package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/termdesk/termdesk/pkg/store"
)

// taskItem adapts a task to the focus ring, identified by its ID so
// focus survives reorders and rebuilds.
type taskItem struct {
	id int
}

func (t taskItem) FocusID() string { return strconv.Itoa(t.id) }

// tasksScreen is the to-do list. Every mutation rewrites the whole task
// file; the on-screen order is the on-disk order.
type tasksScreen struct {
	shell *Shell
	keys  KeyMap
	ring  *Ring
	tasks []store.Task
}

func newTasksScreen(shell *Shell) *tasksScreen {
	s := &tasksScreen{shell: shell, keys: DefaultKeyMap(), ring: NewRing(nil)}
	s.tasks = shell.Tasks.Load()
	s.rebuildRing()
	return s
}

func (s *tasksScreen) rebuildRing() {
	items := make([]Focusable, len(s.tasks))
	for i, t := range s.tasks {
		items[i] = taskItem{id: t.ID}
	}
	s.ring.Rebuild(items)
}

func (s *tasksScreen) Init() tea.Cmd { return nil }
func (s *tasksScreen) Teardown()     {}

func (s *tasksScreen) Title() string { return "Tasks" }

func (s *tasksScreen) Help() string {
	return "a add  e edit  space toggle  d delete  c clear done  K/J move  esc back"
}

func (s *tasksScreen) save() tea.Cmd {
	if err := s.shell.Tasks.Save(s.tasks); err != nil {
		s.shell.Log.Error("saving tasks", "error", err)
		return setStatus("Error: " + err.Error())
	}
	return nil
}

func (s *tasksScreen) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Back):
		return popScreen()

	case key.Matches(keyMsg, s.keys.Up):
		s.ring.Prev()

	case key.Matches(keyMsg, s.keys.Down):
		s.ring.Next()

	case key.Matches(keyMsg, s.keys.Add):
		return openDialog(newInputDialog("New Task", "what needs doing?", ""), func(result any) tea.Cmd {
			text, ok := result.(string)
			if !ok {
				return nil
			}
			s.tasks = append(s.tasks, store.Task{
				ID:        store.NextID(s.tasks),
				Text:      text,
				CreatedAt: time.Now(),
			})
			s.rebuildRing()
			s.ring.Focus(strconv.Itoa(s.tasks[len(s.tasks)-1].ID))
			return s.save()
		})

	case key.Matches(keyMsg, s.keys.Edit):
		idx := s.ring.Index()
		if idx < 0 {
			return nil
		}
		return openDialog(newInputDialog("Edit Task", "", s.tasks[idx].Text), func(result any) tea.Cmd {
			text, ok := result.(string)
			if !ok {
				return nil
			}
			s.tasks[idx].Text = text
			return s.save()
		})

	case key.Matches(keyMsg, s.keys.Space):
		idx := s.ring.Index()
		if idx < 0 {
			return nil
		}
		s.tasks[idx].Completed = !s.tasks[idx].Completed
		return s.save()

	case key.Matches(keyMsg, s.keys.Delete):
		idx := s.ring.Index()
		if idx < 0 {
			return nil
		}
		task := s.tasks[idx]
		return openDialog(newConfirmDialog("Delete Task", fmt.Sprintf("Delete %q?", task.Text)), func(result any) tea.Cmd {
			if yes, _ := result.(bool); !yes {
				return nil
			}
			for i, t := range s.tasks {
				if t.ID == task.ID {
					s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
					break
				}
			}
			s.rebuildRing()
			return s.save()
		})

	case key.Matches(keyMsg, s.keys.Clear):
		done := 0
		for _, t := range s.tasks {
			if t.Completed {
				done++
			}
		}
		if done == 0 {
			return setStatus("No completed tasks")
		}
		return openDialog(newConfirmDialog("Clear Completed", fmt.Sprintf("Remove %d completed task(s)?", done)), func(result any) tea.Cmd {
			if yes, _ := result.(bool); !yes {
				return nil
			}
			var kept []store.Task
			for _, t := range s.tasks {
				if !t.Completed {
					kept = append(kept, t)
				}
			}
			s.tasks = kept
			s.rebuildRing()
			return s.save()
		})

	case key.Matches(keyMsg, s.keys.MoveUp):
		return s.move(-1)

	case key.Matches(keyMsg, s.keys.MoveDn):
		return s.move(1)
	}
	return nil
}

// move swaps the focused task with its neighbor. Focus follows the task
// because the ring tracks IDs, not positions.
func (s *tasksScreen) move(delta int) tea.Cmd {
	idx := s.ring.Index()
	if idx < 0 {
		return nil
	}
	target := idx + delta
	if target < 0 || target >= len(s.tasks) {
		return nil
	}
	s.tasks[idx], s.tasks[target] = s.tasks[target], s.tasks[idx]
	s.rebuildRing()
	return s.save()
}

func (s *tasksScreen) View(width, height int) string {
	theme := s.shell.Theme

	var b strings.Builder
	if len(s.tasks) == 0 {
		b.WriteString(theme.Faint.Render("No tasks yet. Press 'a' to add one."))
		b.WriteString("\n")
	}

	for i, t := range s.tasks {
		icon := theme.Faint.Render(IconPending)
		text := theme.Text.Render(t.Text)
		if t.Completed {
			icon = theme.Done.Render(IconDone)
			text = theme.Faint.Strikethrough(true).Render(t.Text)
		}

		line := icon + " " + text
		if i == s.ring.Index() {
			line = theme.Selected.Render(IconCursor+" ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	done := 0
	for _, t := range s.tasks {
		if t.Completed {
			done++
		}
	}
	b.WriteString("\n")
	b.WriteString(theme.Header.Render(fmt.Sprintf("%d/%d done", done, len(s.tasks))))

	return b.String()
}
