package ui

import (
	"reactive-breakpoints/keys"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205"))

// Menu is the one-line key hint bar at the bottom of the screen.
type Menu struct {
	width, height int
	paused        bool

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

func NewMenu() *Menu {
	return &Menu{keyDown: -1}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetPaused swaps the pause hint for the resume hint.
func (m *Menu) SetPaused(paused bool) {
	m.paused = paused
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// groups returns the action group followed by the system group.
func (m *Menu) groups() [][]keys.KeyName {
	toggle := keys.KeyPause
	if m.paused {
		toggle = keys.KeyResume
	}
	return [][]keys.KeyName{
		{toggle, keys.KeyRefresh, keys.KeyCopy, keys.KeyClear},
		{keys.KeyHelp, keys.KeyQuit},
	}
}

func (m *Menu) String() string {
	var s strings.Builder

	groups := m.groups()
	for g, group := range groups {
		for i, k := range group {
			binding := keys.GlobalkeyBindings[k]

			var (
				localKeyStyle  = keyStyle
				localDescStyle = descStyle
			)
			if g == 0 {
				localKeyStyle = actionGroupStyle
				localDescStyle = actionGroupStyle
			}
			if m.keyDown == k {
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))

			if i != len(group)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}
		if g != len(groups)-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}

	centeredMenuText := menuStyle.Render(s.String())
	if m.width > 0 {
		centeredMenuText = truncate.StringWithTail(centeredMenuText, uint(m.width), ellipsis)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, centeredMenuText)
}
