package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestEveryMappedKeyHasABinding(t *testing.T) {
	for s, name := range GlobalKeyStringsMap {
		binding, ok := GlobalkeyBindings[name]
		if assert.True(t, ok, "no binding for %q", s) {
			assert.Contains(t, binding.Keys(), s)
		}
	}
}

func TestPauseAndResumeShareAKey(t *testing.T) {
	assert.Equal(t, GlobalkeyBindings[KeyPause].Keys(), GlobalkeyBindings[KeyResume].Keys())
	assert.NotEqual(t, GlobalkeyBindings[KeyPause].Help().Desc, GlobalkeyBindings[KeyResume].Help().Desc)
}

func TestBindingsMatchKeyMessages(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	assert.True(t, key.Matches(msg, GlobalkeyBindings[KeyQuit]))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, GlobalkeyBindings[KeyQuit]))
	assert.False(t, key.Matches(msg, GlobalkeyBindings[KeyCopy]))
}
