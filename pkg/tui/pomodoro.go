package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Pomodoro phase durations.
const (
	WorkDuration  = 25 * time.Minute
	BreakDuration = 5 * time.Minute
)

// Pomodoro is a work/break countdown. Remaining time is derived from a
// deadline while running, so rendering once a second needs no extra
// timer of its own.
type Pomodoro struct {
	Phase    string // "work" or "break"
	Running  bool
	deadline time.Time     // valid while running
	paused   time.Duration // remaining while paused
}

// NewPomodoro returns a reset, paused work-phase timer.
func NewPomodoro() *Pomodoro {
	return &Pomodoro{Phase: "work", paused: WorkDuration}
}

// Remaining returns the time left in the current phase.
func (p *Pomodoro) Remaining(now time.Time) time.Duration {
	if !p.Running {
		return p.paused
	}
	rem := p.deadline.Sub(now)
	if rem < 0 {
		return 0
	}
	return rem
}

// Start resumes the countdown.
func (p *Pomodoro) Start(now time.Time) {
	if p.Running {
		return
	}
	p.deadline = now.Add(p.paused)
	p.Running = true
}

// Pause freezes the countdown.
func (p *Pomodoro) Pause(now time.Time) {
	if !p.Running {
		return
	}
	p.paused = p.Remaining(now)
	p.Running = false
}

// Reset returns to a paused work phase at the full duration.
func (p *Pomodoro) Reset() {
	p.Phase = "work"
	p.Running = false
	p.paused = WorkDuration
}

// Advance flips to the next phase when the current one has expired,
// reporting whether a transition happened. The next phase starts
// running immediately.
func (p *Pomodoro) Advance(now time.Time) bool {
	if !p.Running || p.Remaining(now) > 0 {
		return false
	}
	if p.Phase == "work" {
		p.Phase = "break"
		p.deadline = now.Add(BreakDuration)
	} else {
		p.Phase = "work"
		p.deadline = now.Add(WorkDuration)
	}
	return true
}

// Active reports whether the timer should appear in the header.
func (p *Pomodoro) Active() bool {
	return p.Running || p.paused != WorkDuration || p.Phase != "work"
}

// Label renders the header readout, e.g. "🍅 24:59" or "☕ 04:30".
func (p *Pomodoro) Label(now time.Time) string {
	icon := "🍅"
	if p.Phase == "break" {
		icon = "☕"
	}
	rem := p.Remaining(now)
	mins := int(rem.Minutes())
	secs := int(rem.Seconds()) % 60
	label := fmt.Sprintf("%s %02d:%02d", icon, mins, secs)
	if !p.Running {
		label += " ⏸"
	}
	return label
}

// pomodoroDialog controls the shared timer. It mutates the timer
// directly and always resolves to nil.
type pomodoroDialog struct {
	timer *Pomodoro
}

func newPomodoroDialog(timer *Pomodoro) *pomodoroDialog {
	return &pomodoroDialog{timer: timer}
}

func (d *pomodoroDialog) Init() tea.Cmd { return nil }

func (d *pomodoroDialog) Update(msg tea.Msg) (tea.Cmd, bool, any) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false, nil
	}
	switch keyMsg.String() {
	case "esc", "q", "enter":
		return nil, true, nil
	case "s", " ":
		if d.timer.Running {
			d.timer.Pause(time.Now())
		} else {
			d.timer.Start(time.Now())
		}
	case "r":
		d.timer.Reset()
	}
	return nil, false, nil
}

func (d *pomodoroDialog) View(theme *Theme, width int) string {
	now := time.Now()

	phase := "Work"
	if d.timer.Phase == "break" {
		phase = "Break"
	}
	state := "paused"
	if d.timer.Running {
		state = "running"
	}

	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render("Pomodoro"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s — %s\n", phase, state))
	b.WriteString(theme.Title.Render(d.timer.Label(now)))
	b.WriteString("\n\n")
	b.WriteString(theme.Footer.Render("s start/pause  r reset  esc close"))
	return theme.Modal.Render(b.String())
}
