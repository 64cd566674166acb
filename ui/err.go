package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#FF0000",
	Dark:  "#FF0000",
})

var infoStyle = lipgloss.NewStyle().Foreground(StatusWatching)

// ErrBox is the single status row under the menu. It shows either an error
// or a short confirmation.
type ErrBox struct {
	height, width int
	err           error
	info          string
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
	e.info = ""
}

// SetInfo shows a confirmation message instead of an error.
func (e *ErrBox) SetInfo(msg string) {
	e.info = msg
	e.err = nil
}

func (e *ErrBox) Clear() {
	e.err = nil
	e.info = ""
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// Message returns the text currently shown, if any.
func (e *ErrBox) Message() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.info
}

func (e *ErrBox) String() string {
	var line string
	switch {
	case e.err != nil:
		// Only the first line of a multi-line error fits the row.
		msg := strings.Split(e.err.Error(), "\n")[0]
		line = errStyle.Render(truncate.StringWithTail(msg, uint(max(e.width, 0)), ellipsis))
	case e.info != "":
		line = infoStyle.Render(truncate.StringWithTail(e.info, uint(max(e.width, 0)), ellipsis))
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Top, line)
}
