package inspect

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/ui/layout"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComponent struct{ name string }

func (f fakeComponent) InspectNode() *Node {
	return NewNode(f.name).WithBounds(10, 2)
}

func TestSnapshotWithState(t *testing.T) {
	th := breakpoint.DefaultThresholds
	th.XXL = math.Inf(1)

	s := NewSnapshot().WithState(breakpoint.Derive(breakpoint.MD, 700, 400), th)
	require.Len(t, s.Breakpoints, len(breakpoint.Names))
	assert.Equal(t, "md", s.Breakpoints[2].Name)
	assert.True(t, s.Breakpoints[2].Active)
	assert.False(t, s.Breakpoints[3].Active)
	assert.Equal(t, float64(-1), s.Breakpoints[5].Threshold)

	_, err := json.Marshal(s)
	assert.NoError(t, err)
}

func TestSnapshotToText(t *testing.T) {
	state := breakpoint.Derive(breakpoint.LG, 100, 30)
	c := layout.ComputeConstraints(state)
	s := NewSnapshot().
		WithTerminal(100, 30).
		WithAppState(AppStateInfo{Watching: true}).
		WithState(state, layout.TerminalThresholds).
		WithLayout(c, layout.ComputeDegradation(c, state)).
		WithComponents(Tree(fakeComponent{"Ruler"}, fakeComponent{"List"}))

	text := s.ToText()
	assert.Contains(t, text, "Terminal: 100x30")
	assert.Contains(t, text, "Breakpoint: lg")
	assert.Contains(t, text, "[X] lg")
	assert.Contains(t, text, "  Ruler (10x2)")
	assert.Equal(t, c.Mode.String(), s.Layout.Mode)
}

func TestWriteSnapshotToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, WriteSnapshotToPath(NewSnapshot().WithTerminal(80, 24), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Snapshot
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 80, got.Terminal.Width)
}

func TestNodeChaining(t *testing.T) {
	n := NewNode("List").WithID("changes").WithVisible(false).WithState("paused", true)
	assert.Equal(t, "changes", n.ID)
	assert.False(t, n.Visible)
	assert.Equal(t, true, n.State["paused"])

	root := Tree(fakeComponent{"A"}, fakeComponent{"B"})
	require.Len(t, root.Children, 2)
	assert.Equal(t, "B", root.Children[1].Type)
}

func TestExtractStyleInfo(t *testing.T) {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	info := ExtractStyleInfo(style, "panel")
	assert.True(t, info.Bold)
	assert.Equal(t, "205", info.Foreground)
	assert.Equal(t, "rounded", info.Border)
	assert.Equal(t, []int{0, 1, 0, 1}, info.Padding)
	assert.Equal(t, []string{"panel"}, info.AppliedStyles)

	plain := ExtractStyleInfo(lipgloss.NewStyle())
	assert.Empty(t, plain.Border)
	assert.Nil(t, plain.Padding)
	assert.Equal(t, "adaptive(light=#fff, dark=#000)", colorToString(lipgloss.AdaptiveColor{Light: "#fff", Dark: "#000"}))
}
