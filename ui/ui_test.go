package ui

import (
	"errors"
	"math"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/testing/snapshot"
	"reactive-breakpoints/ui/layout"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatePanel(t *testing.T) {
	p := NewStatePanel()
	p.SetSize(40, 30)
	p.SetState(breakpoint.Derive(breakpoint.LG, 100, 30))

	out := p.String()
	snap := snapshot.New(t)
	snap.AssertContains(out, "State")
	snap.AssertContains(out, "lg")
	snap.AssertContains(out, "100")
	snap.AssertContains(out, "smAndUp")
	snap.AssertContains(out, "● lg")
	snap.AssertContains(out, "○ md")
	assert.Equal(t, 40, snapshot.Width(out))
	assert.Equal(t, 30, snapshot.Lines(out))

	p.SetShowRelational(false)
	snap.AssertNotContains(p.String(), "smAndUp")
}

func TestStatePanelFitsSmallSizes(t *testing.T) {
	p := NewStatePanel()
	p.SetState(breakpoint.Derive(breakpoint.XS, 10, 5))

	for _, size := range [][2]int{{10, 5}, {3, 2}, {1, 1}} {
		p.SetSize(size[0], size[1])
		snapshot.New(t).AssertFits(p.String(), size[0], size[1])
	}

	p.SetSize(0, 10)
	assert.Empty(t, p.String())
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "1024", formatSize(1024))
	assert.Equal(t, "10.50", formatSize(10.5))
	assert.Equal(t, "NaN", formatSize(math.NaN()))
	assert.Equal(t, "+Inf", formatSize(math.Inf(1)))
}

func TestRulerSegments(t *testing.T) {
	r := NewRuler(layout.TerminalThresholds)
	r.SetWidth(20)

	segs := r.Segments()
	require.Len(t, segs, 20)
	assert.Equal(t, breakpoint.XS, segs[0])
	assert.Equal(t, breakpoint.XXL, segs[19])
	for i := 1; i < len(segs); i++ {
		assert.LessOrEqual(t, segs[i-1].Index(), segs[i].Index(), "column %d", i)
	}
}

func TestRulerDrawsTheUnclassifiedGap(t *testing.T) {
	r := NewRuler(breakpoint.DefaultThresholds)
	r.SetWidth(40)

	// 1536 * 1.25 = 1920 over 40 columns; column 27 sits at 1320.
	assert.Equal(t, breakpoint.XS, r.Segments()[27])
	assert.Contains(t, r.String(), gapChar)
}

func TestRulerMarker(t *testing.T) {
	r := NewRuler(layout.TerminalThresholds)
	assert.Equal(t, -1, r.MarkerColumn(), "no width")
	assert.Empty(t, r.String())

	r.SetWidth(50)
	r.SetState(breakpoint.Derive(breakpoint.XS, 0, 10))
	assert.Equal(t, 0, r.MarkerColumn())

	r.SetState(breakpoint.Derive(breakpoint.XXL, 5000, 10))
	assert.Equal(t, 49, r.MarkerColumn())

	r.SetState(breakpoint.Derive(breakpoint.XS, math.NaN(), 10))
	assert.Equal(t, -1, r.MarkerColumn())

	r.SetState(breakpoint.Derive(breakpoint.MD, 80, 24))
	out := r.String()
	assert.Equal(t, 2, snapshot.Lines(out))
	assert.Equal(t, 50, snapshot.Width(out))
	assert.Contains(t, out, IconMarker)
}

func TestList(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewList()
	l.now = func() time.Time { return now }
	l.SetSize(50, 10)

	snapshot.New(t).AssertContains(l.String(), "no changes yet")

	l.Add(Change{At: now.Add(-2 * time.Minute), From: breakpoint.Derive(breakpoint.XS, 30, 20), To: breakpoint.Derive(breakpoint.MD, 80, 24)})
	l.Add(Change{At: now, From: breakpoint.Derive(breakpoint.MD, 80, 24), To: breakpoint.Derive(breakpoint.LG, 100, 30)})
	assert.Equal(t, 2, l.Len())

	out := snapshot.StripANSI(l.String())
	assert.Contains(t, out, "md → lg")
	assert.Contains(t, out, "100×30")
	assert.Contains(t, out, "2m ago")
	assert.Less(t, strings.Index(out, "md → lg"), strings.Index(out, "xs → md"), "newest first")
	snapshot.New(t).AssertFits(l.String(), 50, 10)

	l.SetPaused(true)
	snapshot.New(t).AssertContains(l.String(), "paused")

	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestListKeepsMaxChanges(t *testing.T) {
	l := NewList()
	for i := 0; i < MaxChanges+10; i++ {
		l.Add(Change{To: breakpoint.Derive(breakpoint.XS, float64(i), 0)})
	}

	changes := l.Changes()
	require.Len(t, changes, MaxChanges)
	assert.Equal(t, float64(10), changes[0].To.Width, "oldest dropped first")
}

func TestMenu(t *testing.T) {
	m := NewMenu()
	m.SetSize(80, 1)

	snap := snapshot.New(t)
	snap.AssertContains(m.String(), "p pause")
	snap.AssertContains(m.String(), "q quit")

	m.SetPaused(true)
	snap.AssertContains(m.String(), "p resume")
	snap.AssertNotContains(m.String(), "pause")
	assert.Equal(t, 80, snapshot.Width(m.String()))
}

func TestHeader(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)
	h.SetState(breakpoint.Derive(breakpoint.LG, 100, 30), layout.LayoutStandard)

	snap := snapshot.New(t)
	out := h.String()
	snap.AssertContains(out, "breakpoints")
	snap.AssertContains(out, "lg")
	snap.AssertContains(out, "standard")
	snap.AssertContains(out, "watching")
	assert.Equal(t, layout.HeaderHeight, snapshot.Lines(out))
	snap.AssertFits(out, 80, layout.HeaderHeight)

	h.SetWatching(false)
	h.SetMinWarning(true)
	out = h.String()
	snap.AssertContains(out, "paused")
	snap.AssertContains(out, "need 40x12")
}

func TestErrBox(t *testing.T) {
	e := NewErrBox()
	e.SetSize(40, 1)
	assert.Empty(t, e.Message())

	e.SetError(errors.New("clipboard unavailable\nexit status 1"))
	snap := snapshot.New(t)
	snap.AssertContains(e.String(), "clipboard unavailable")
	snap.AssertNotContains(e.String(), "exit status")

	e.SetInfo("copied")
	assert.Equal(t, "copied", e.Message())
	snap.AssertContains(e.String(), "copied")

	e.Clear()
	assert.Empty(t, e.Message())
}

func TestFormatRelative(t *testing.T) {
	tests := []struct {
		diff time.Duration
		want string
	}{
		{0, "just now"},
		{4 * time.Second, "just now"},
		{12 * time.Second, "12s ago"},
		{2 * time.Minute, "2m ago"},
		{3 * time.Hour, "3h ago"},
		{49 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatRelative(tt.diff))
		})
	}
	assert.Equal(t, "just now", FormatRelativeTime(time.Now()))
}

func TestInspectNodes(t *testing.T) {
	p := NewStatePanel()
	p.SetSize(30, 20)
	p.SetState(breakpoint.Derive(breakpoint.SM, 50, 20))

	n := p.InspectNode()
	assert.Equal(t, "StatePanel", n.Type)
	assert.Equal(t, "sm", n.State["name"])
	assert.True(t, n.Visible)
	require.NotNil(t, n.Styles)
	assert.Equal(t, "rounded", n.Styles.Border)

	l := NewList()
	l.Add(Change{From: breakpoint.Derive(breakpoint.XS, 1, 1), To: breakpoint.Derive(breakpoint.SM, 50, 20)})
	assert.Equal(t, "xs → sm", l.InspectNode().State["last"])
	assert.False(t, l.InspectNode().Visible)

	r := NewRuler(layout.TerminalThresholds)
	assert.False(t, r.InspectNode().Visible)
}

func TestTierColors(t *testing.T) {
	for _, name := range breakpoint.Names {
		_, ok := TierColors[name]
		assert.True(t, ok, "no color for %s", name)
	}
	assert.Equal(t, Primary, TierColor(breakpoint.Name("bogus")))
	assert.Equal(t, IconOn, FlagIcon(true))
	assert.Equal(t, IconOff, FlagIcon(false))
}

func TestMenuTruncatesToWidth(t *testing.T) {
	m := NewMenu()
	m.SetSize(20, 1)
	assert.LessOrEqual(t, snapshot.Width(m.String()), 20)
}
