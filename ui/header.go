package ui

import (
	"fmt"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/ui/layout"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = " breakpoints "

var watchingStyle = lipgloss.NewStyle().
	Foreground(StatusWatching)

var warningStyle = lipgloss.NewStyle().
	Foreground(StatusWarning).
	Bold(true)

// Header is the title line: app name and tier badge on the left, observer
// status on the right, followed by a blank line.
type Header struct {
	width    int
	state    breakpoint.State
	mode     layout.LayoutMode
	watching bool
	warning  bool
}

func NewHeader() *Header {
	return &Header{watching: true}
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) SetState(s breakpoint.State, mode layout.LayoutMode) {
	h.state = s
	h.mode = mode
}

func (h *Header) SetWatching(watching bool) {
	h.watching = watching
}

// SetMinWarning shows a warning that the terminal is below the minimum size.
func (h *Header) SetMinWarning(warning bool) {
	h.warning = warning
}

func (h *Header) String() string {
	if h.width <= 0 {
		return ""
	}

	left := mainTitle.Render(appTitle) + " " + TierBadge(h.state.Name)
	if h.warning {
		left += " " + warningStyle.Render(fmt.Sprintf("%s need %dx%d", IconWarning, layout.MinWidth, layout.MinHeight))
	}

	status := watchingStyle.Render(IconWatching + " watching")
	if !h.watching {
		status = pausedStyle.Render(IconPaused + " paused")
	}
	right := TextStyles.Muted.Render(h.mode.String()) + "  " + status

	half := h.width / 2
	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.Place(half, 1, lipgloss.Left, lipgloss.Top, left),
		lipgloss.Place(h.width-half, 1, lipgloss.Right, lipgloss.Top, right),
	)
	return fitLines([]string{line}, h.width, 1) + "\n"
}
