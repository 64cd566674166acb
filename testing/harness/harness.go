// Package harness drives a Bubble Tea model synchronously in tests: every
// message goes straight to Update and the returned command is handed back
// to the caller instead of being run.
package harness

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// FlushMsg carries no data. Models handle it like any other message, which
// gives them a chance to apply work that arrived from other goroutines.
type FlushMsg struct{}

// Harness owns a model and the terminal size it was last given.
type Harness struct {
	t             *testing.T
	model         tea.Model
	width, height int
}

// New wraps model and sends it the initial window size.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	h := &Harness{t: t, model: model}
	h.Resize(width, height)
	return h
}

// SendMsg passes msg to Update and returns the command it produced.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey types key as runes. Returns the command of the last key.
func (h *Harness) SendKey(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
	return cmd
}

// SendSpecialKey sends a non-rune key such as tea.KeyEnter or tea.KeyCtrlC.
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Resize sends a tea.WindowSizeMsg, as the runtime does on SIGWINCH.
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width, h.height = width, height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// Flush sends a FlushMsg.
func (h *Harness) Flush() tea.Cmd {
	return h.SendMsg(FlushMsg{})
}

// WaitFor flushes the model until cond holds, failing the test after timeout.
func (h *Harness) WaitFor(cond func() bool, timeout time.Duration) {
	h.t.Helper()
	require.Eventually(h.t, func() bool {
		h.Flush()
		return cond()
	}, timeout, 5*time.Millisecond)
}

func (h *Harness) View() string {
	return h.model.View()
}

// Size is the terminal size last sent to the model.
func (h *Harness) Size() (width, height int) {
	return h.width, h.height
}

// TerminalSize is a named terminal shape.
type TerminalSize struct {
	Name          string
	Width, Height int
}

// CommonSizes holds one terminal per tier plus a few awkward shapes.
var CommonSizes = []TerminalSize{
	{Name: "xs", Width: 32, Height: 20},
	{Name: "sm", Width: 56, Height: 30},
	{Name: "md", Width: 80, Height: 24},
	{Name: "lg", Width: 100, Height: 30},
	{Name: "xl", Width: 120, Height: 40},
	{Name: "xxl", Width: 200, Height: 50},
	{Name: "wide", Width: 200, Height: 14},
	{Name: "tall", Width: 80, Height: 60},
	{Name: "tiny", Width: 10, Height: 5},
}

// RunWithCommonSizes runs fn as a subtest for every entry in CommonSizes.
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range CommonSizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}
