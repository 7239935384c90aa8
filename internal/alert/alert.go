// Package alert shows one transient success/error banner at a time.
//
// An alert is dismissed either by its auto-dismiss timer or by the user. Both
// paths enter the same exit phase and are removed once it has elapsed.
package alert

import (
	"time"

	"contactup/internal/models"
	"contactup/internal/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

const (
	DefaultTimeout = 5 * time.Second
	DefaultExit    = 300 * time.Millisecond
)

type Phase int

const (
	PhaseHidden Phase = iota
	PhaseVisible
	PhaseLeaving
)

type (
	// ExpireMsg fires when an alert's auto-dismiss delay has elapsed.
	ExpireMsg struct{ ID uint64 }
	// RemoveMsg fires when an alert's exit phase has elapsed.
	RemoveMsg struct{ ID uint64 }
)

type Notifier struct {
	Timeout time.Duration
	Exit    time.Duration

	current models.Alert
	phase   Phase
	nextID  uint64
}

func New() *Notifier {
	return &Notifier{Timeout: DefaultTimeout, Exit: DefaultExit}
}

// Show replaces any visible alert and schedules the new one's auto-dismiss.
func (n *Notifier) Show(text string, kind models.AlertKind) tea.Cmd {
	n.nextID++
	n.current = models.Alert{ID: n.nextID, Text: text, Kind: kind}
	n.phase = PhaseVisible

	id := n.current.ID
	return tea.Tick(n.Timeout, func(time.Time) tea.Msg {
		return ExpireMsg{ID: id}
	})
}

// Dismiss is the user-triggered close.
func (n *Notifier) Dismiss() tea.Cmd {
	if n.phase != PhaseVisible {
		return nil
	}
	return n.leave()
}

// Update handles the notifier's own timer messages. Messages for replaced alerts are dropped.
func (n *Notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ExpireMsg:
		if msg.ID != n.current.ID || n.phase != PhaseVisible {
			return nil
		}
		return n.leave()
	case RemoveMsg:
		if msg.ID != n.current.ID || n.phase != PhaseLeaving {
			return nil
		}
		n.current = models.Alert{}
		n.phase = PhaseHidden
	}
	return nil
}

func (n *Notifier) leave() tea.Cmd {
	n.phase = PhaseLeaving
	id := n.current.ID
	return tea.Tick(n.Exit, func(time.Time) tea.Msg {
		return RemoveMsg{ID: id}
	})
}

// Current returns the displayed alert, if any. Leaving alerts are still displayed.
func (n *Notifier) Current() (models.Alert, bool) {
	if n.phase == PhaseHidden {
		return models.Alert{}, false
	}
	return n.current, true
}

func (n *Notifier) Phase() Phase {
	return n.phase
}

// View renders the banner with its close control, or "" when nothing is shown.
func (n *Notifier) View(s styles.Set, width int) string {
	a, ok := n.Current()
	if !ok {
		return ""
	}

	closer := "  [x]"
	text := a.Text
	if width > 0 {
		avail := width - runewidth.StringWidth(closer) - 2
		if avail > 1 {
			text = runewidth.Truncate(text, avail, "…")
		}
	}

	if n.phase == PhaseLeaving {
		return s.AlertLeaving.Render(text + closer)
	}
	return s.Alert(a.Kind).Render(text + closer)
}
