package ui

import (
	"fmt"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/log"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// MaxChanges is how many changes the list keeps.
const MaxChanges = 50

const arrow = " → "

var pausedStyle = lipgloss.NewStyle().
	Foreground(StatusPaused)

var sizeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

// Change is one delivered breakpoint change.
type Change struct {
	At   time.Time
	From breakpoint.State
	To   breakpoint.State
}

// List shows the delivered changes, newest first.
type List struct {
	width, height int
	changes       []Change
	paused        bool
	now           func() time.Time
}

func NewList() *List {
	return &List{now: time.Now}
}

func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// SetPaused marks the list as not receiving changes.
func (l *List) SetPaused(paused bool) {
	l.paused = paused
}

// Add records a change, dropping the oldest once MaxChanges is reached.
func (l *List) Add(c Change) {
	l.changes = append(l.changes, c)
	if len(l.changes) > MaxChanges {
		l.changes = l.changes[len(l.changes)-MaxChanges:]
	}
}

func (l *List) Len() int {
	return len(l.changes)
}

// Changes returns the recorded changes, oldest first.
func (l *List) Changes() []Change {
	out := make([]Change, len(l.changes))
	copy(out, l.changes)
	return out
}

func (l *List) Clear() {
	l.changes = nil
}

func (l *List) render(c Change) string {
	transition := TierStyle(c.From.Name).Render(c.From.Name.String()) +
		arrow +
		TierStyle(c.To.Name).Render(c.To.Name.String())
	size := sizeStyle.Render(fmt.Sprintf("%s×%s", formatSize(c.To.Width), formatSize(c.To.Height)))
	age := TextStyles.Muted.Render(formatRelative(l.now().Sub(c.At)))
	return padRight(transition, 10) + " " + padRight(size, 11) + " " + age
}

func (l *List) String() string {
	defer log.GetProfiler().StartRender("changes")()

	title := panelTitle("Changes")
	if l.paused {
		title += " " + pausedStyle.Render(IconPaused+" paused")
	}
	lines := []string{title, ""}

	if len(l.changes) == 0 {
		lines = append(lines, TextStyles.Muted.Render("no changes yet, resize the terminal"))
	}
	for i := len(l.changes) - 1; i >= 0; i-- {
		lines = append(lines, l.render(l.changes[i]))
	}
	return frame(lines, l.width, l.height)
}
