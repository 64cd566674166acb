package app

import (
	"context"
	"encoding/json"
	"errors"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/config"
	"reactive-breakpoints/testing/harness"
	"reactive-breakpoints/testing/snapshot"
	"reactive-breakpoints/ui/layout"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHome(t *testing.T, width, height int) (*home, *harness.Harness) {
	t.Helper()
	return newTestHomeWithDelay(t, width, height, 10)
}

func newTestHomeWithDelay(t *testing.T, width, height, delayMs int) (*home, *harness.Harness) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := config.DefaultConfig()
	cfg.ResizeDelayMs = delayMs

	m := newHome(ctx, cfg)
	t.Cleanup(m.close)
	return m, harness.New(t, m, width, height)
}

func TestFirstSizeIsAppliedImmediately(t *testing.T) {
	m, h := newTestHome(t, 100, 30)

	assert.Equal(t, breakpoint.LG, m.current.Name)
	assert.Equal(t, float64(100), m.current.Width)
	assert.False(t, m.bp.Driver().Pending())

	changes := m.list.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, breakpoint.XS, changes[0].From.Name)
	assert.Equal(t, breakpoint.LG, changes[0].To.Name)

	snapshot.New(t).AssertContains(h.View(), "xs → lg")
}

func TestResizeIsDebounced(t *testing.T) {
	m, h := newTestHomeWithDelay(t, 100, 30, 200)

	h.Resize(60, 30)
	h.Resize(130, 40)
	assert.Equal(t, breakpoint.LG, m.current.Name, "not applied until the size settles")
	assert.True(t, m.bp.Driver().Pending())
	snapshot.New(t).AssertContains(h.View(), "Resizing")

	h.WaitFor(func() bool {
		return m.current.Name == breakpoint.XXL
	}, 2*time.Second)

	changes := m.list.Changes()
	require.Len(t, changes, 2, "intermediate size never delivered")
	assert.Equal(t, breakpoint.LG, changes[1].From.Name)
	assert.Equal(t, float64(130), changes[1].To.Width)
}

func TestLayoutFollowsTheTerminalRightAway(t *testing.T) {
	m, h := newTestHome(t, 100, 30)

	h.Resize(50, 30)
	assert.True(t, m.constraints.UseVerticalStack)
	assert.Equal(t, layout.LayoutCompact, m.constraints.Mode)
}

func TestPauseAndResume(t *testing.T) {
	m, h := newTestHome(t, 100, 30)

	h.SendKey("p")
	assert.False(t, m.bp.Observer().IsWatching())
	snap := snapshot.New(t)
	snap.AssertContains(h.View(), "paused")
	snap.AssertContains(h.View(), "p resume")

	h.Resize(50, 30)
	h.WaitFor(func() bool {
		return m.current.Name == breakpoint.SM
	}, time.Second)
	assert.Equal(t, 1, m.list.Len(), "nothing delivered while paused")

	h.SendKey("p")
	assert.True(t, m.bp.Observer().IsWatching())
	h.Flush()
	assert.Equal(t, 1, m.list.Len(), "resume does not replay")

	h.Resize(100, 30)
	h.WaitFor(func() bool {
		return m.list.Len() == 2
	}, time.Second)
	assert.Equal(t, breakpoint.SM, m.list.Changes()[1].From.Name)
}

func stubClipboard(t *testing.T, fn func(string) error) {
	orig := copyToClipboard
	copyToClipboard = fn
	t.Cleanup(func() { copyToClipboard = orig })
}

func TestCopyState(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error {
		copied = s
		return nil
	})

	m, h := newTestHome(t, 100, 30)
	h.SendKey("c")

	var s breakpoint.State
	require.NoError(t, json.Unmarshal([]byte(copied), &s))
	assert.Equal(t, breakpoint.LG, s.Name)
	assert.True(t, s.MdAndUp)
	assert.Equal(t, "copied state to clipboard", m.errBox.Message())
}

func TestCopyStateError(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard") })

	m, h := newTestHome(t, 100, 30)
	h.SendKey("c")

	assert.Contains(t, m.errBox.Message(), "no clipboard")
	snapshot.New(t).AssertContains(h.View(), "no clipboard")

	h.SendMsg(hideErrMsg{})
	assert.Empty(t, m.errBox.Message())
}

func TestClearLog(t *testing.T) {
	m, h := newTestHome(t, 100, 30)
	require.Equal(t, 1, m.list.Len())

	h.SendKey("x")
	assert.Equal(t, 0, m.list.Len())
}

func TestRefreshMeasuresImmediately(t *testing.T) {
	m, h := newTestHome(t, 100, 30)

	m.measurer.Set(200, 50)
	h.SendKey("r")
	assert.Equal(t, breakpoint.XXL, m.current.Name)
	assert.Equal(t, 2, m.list.Len())
}

func TestHelpOverlay(t *testing.T) {
	m, h := newTestHome(t, 100, 30)

	h.SendKey("?")
	assert.Equal(t, stateHelp, m.state)
	snapshot.New(t).AssertContains(h.View(), "Press any key to close")

	// Keys go to the overlay while it is open.
	h.SendKey("x")
	assert.Equal(t, stateDefault, m.state)
	assert.Equal(t, 1, m.list.Len())
}

func TestQuit(t *testing.T) {
	m, h := newTestHome(t, 100, 30)

	cmd := h.SendKey("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.bp.Driver().Listening())
}

func TestViewFitsEveryTerminalSize(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		_, h := newTestHome(t, size.Width, size.Height)
		snapshot.New(t).AssertFits(h.View(), size.Width, size.Height)
	})
}

func TestSnapshot(t *testing.T) {
	m, h := newTestHome(t, 100, 30)
	h.SendKey("?")

	s := m.snapshot()
	assert.Equal(t, 100, s.Terminal.Width)
	assert.Equal(t, "lg", s.State.Name.String())
	assert.True(t, s.AppState.Watching)
	assert.Equal(t, 1, s.AppState.Handlers)
	assert.Equal(t, "help", s.AppState.OverlayType)
	assert.Equal(t, 1, s.AppState.ChangeCount)
	assert.Equal(t, m.constraints.Mode.String(), s.Layout.Mode)
	require.Len(t, s.Breakpoints, 6)
	assert.True(t, s.Breakpoints[breakpoint.LG.Index()].Active)
	require.NotNil(t, s.Components)
	assert.Len(t, s.Components.Children, 3)

	_, err := json.Marshal(s)
	assert.NoError(t, err)
}
