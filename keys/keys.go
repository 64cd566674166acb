package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyPause KeyName = iota
	KeyResume
	KeyRefresh
	KeyCopy
	KeyClear
	KeyHelp
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
// Pause and resume share a key; the app toggles between them.
var GlobalKeyStringsMap = map[string]KeyName{
	"p":      KeyPause,
	"r":      KeyRefresh,
	"c":      KeyCopy,
	"x":      KeyClear,
	"?":      KeyHelp,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyPause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	KeyResume: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "resume"),
	),
	KeyRefresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "re-measure"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy state"),
	),
	KeyClear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear log"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
