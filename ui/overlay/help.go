package overlay

import (
	"reactive-breakpoints/keys"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var helpKeys = []keys.KeyName{
	keys.KeyPause,
	keys.KeyResume,
	keys.KeyRefresh,
	keys.KeyCopy,
	keys.KeyClear,
	keys.KeyHelp,
	keys.KeyQuit,
}

const helpText = `The tier is picked from the terminal width: the first
threshold the width fits under, xxl at or above its
threshold, xs otherwise. Resizes are applied once the
size has settled.`

// HelpOverlay lists the key bindings and how the tier is picked.
type HelpOverlay struct {
	Dismissed bool
	width     int
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{width: 60}
}

// HandleKeyPress dismisses the overlay on any key and reports that it closed.
func (h *HelpOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	h.Dismissed = true
	return true
}

// SetWidth sets the width of the overlay
func (h *HelpOverlay) SetWidth(width int) {
	h.width = width
}

func (h *HelpOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7aa2f7")).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	textStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888"))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Breakpoints"))
	content.WriteString("\n\n")
	content.WriteString(textStyle.Render(helpText))
	content.WriteString("\n\n")

	for _, k := range helpKeys {
		help := keys.GlobalkeyBindings[k].Help()
		content.WriteString(keyStyle.Render(lipgloss.PlaceHorizontal(8, lipgloss.Left, help.Key)))
		content.WriteString(descStyle.Render(help.Desc))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render("Press any key to close"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7aa2f7")).
		Padding(1, 2).
		Width(h.width)

	return borderStyle.Render(content.String())
}
