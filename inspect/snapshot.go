package inspect

import (
	"fmt"
	"math"
	"strings"
	"time"

	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/ui/layout"
)

// Snapshot is the state of the TUI at a point in time.
type Snapshot struct {
	Timestamp  time.Time        `json:"timestamp"`
	Version    string           `json:"version"`
	Terminal   TerminalInfo     `json:"terminal"`
	AppState   AppStateInfo     `json:"app_state"`
	State      breakpoint.State `json:"state"`
	Layout     LayoutInfo       `json:"layout"`
	Components *Node            `json:"components,omitempty"`
	// Breakpoints lists every tier, xs first.
	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo is what the TUI is doing rather than what it draws.
type AppStateInfo struct {
	// Watching is false while the observer is paused.
	Watching bool `json:"watching"`
	// Handlers is the number of handlers registered with the observer.
	Handlers    int    `json:"handlers"`
	HasOverlay  bool   `json:"has_overlay"`
	OverlayType string `json:"overlay_type,omitempty"`
	// ChangeCount is the length of the change log.
	ChangeCount  int    `json:"change_count"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// LayoutInfo mirrors layout.Constraints and layout.Degradation.
type LayoutInfo struct {
	Mode             string          `json:"mode"`
	StateWidth       int             `json:"state_width"`
	StateHeight      int             `json:"state_height"`
	LogWidth         int             `json:"log_width"`
	LogHeight        int             `json:"log_height"`
	RulerWidth       int             `json:"ruler_width"`
	HelpHeight       int             `json:"help_height"`
	UseVerticalStack bool            `json:"use_vertical_stack"`
	Degradation      DegradationInfo `json:"degradation"`
}

type DegradationInfo struct {
	HideRelational bool `json:"hide_relational"`
	HideRuler      bool `json:"hide_ruler"`
	HideLog        bool `json:"hide_log"`
	ShowMinWarning bool `json:"show_min_warning"`
}

// BreakpointInfo describes one tier. Thresholds JSON cannot hold (NaN and
// the infinities) are reported as -1.
type BreakpointInfo struct {
	Name      string  `json:"name"`
	Threshold float64 `json:"threshold"`
	Active    bool    `json:"active"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithAppState sets app state and returns the snapshot for chaining.
func (s *Snapshot) WithAppState(info AppStateInfo) *Snapshot {
	s.AppState = info
	return s
}

// WithState records the breakpoint state and its tiers.
func (s *Snapshot) WithState(state breakpoint.State, thresholds breakpoint.Threshold) *Snapshot {
	s.State = state
	s.Breakpoints = make([]BreakpointInfo, 0, len(breakpoint.Names))
	for _, name := range breakpoint.Names {
		s.Breakpoints = append(s.Breakpoints, BreakpointInfo{
			Name:      name.String(),
			Threshold: jsonSafe(thresholds.Get(name)),
			Active:    state.Own(name),
		})
	}
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:             c.Mode.String(),
		StateWidth:       c.StateWidth,
		StateHeight:      c.StateHeight,
		LogWidth:         c.LogWidth,
		LogHeight:        c.LogHeight,
		RulerWidth:       c.RulerWidth,
		HelpHeight:       c.HelpHeight,
		UseVerticalStack: c.UseVerticalStack,
		Degradation: DegradationInfo{
			HideRelational: d.HideRelational,
			HideRuler:      d.HideRuler,
			HideLog:        d.HideLog,
			ShowMinWarning: d.ShowMinWarning,
		},
	}
	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// jsonSafe maps values encoding/json refuses to -1.
func jsonSafe(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return -1
	}
	return v
}

// ToText renders the snapshot for people, as written to the debug log.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== UI Snapshot ===\n")
	fmt.Fprintf(&b, "Time: %s\n", s.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height)
	fmt.Fprintf(&b, "Watching: %v\n", s.AppState.Watching)
	fmt.Fprintf(&b, "Breakpoint: %s\n", s.State.Name)

	fmt.Fprintf(&b, "\n--- Layout ---\n")
	fmt.Fprintf(&b, "Mode: %s\n", s.Layout.Mode)
	fmt.Fprintf(&b, "State: %dx%d\n", s.Layout.StateWidth, s.Layout.StateHeight)
	fmt.Fprintf(&b, "Log: %dx%d\n", s.Layout.LogWidth, s.Layout.LogHeight)
	fmt.Fprintf(&b, "Vertical Stack: %v\n", s.Layout.UseVerticalStack)

	fmt.Fprintf(&b, "\n--- Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		mark := " "
		if bp.Active {
			mark = "X"
		}
		fmt.Fprintf(&b, "  [%s] %-3s <= %g\n", mark, bp.Name, bp.Threshold)
	}

	if s.Components != nil {
		fmt.Fprintf(&b, "\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}
	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth) + node.Type)
	if node.ID != "" {
		fmt.Fprintf(b, " [%s]", node.ID)
	}
	fmt.Fprintf(b, " (%dx%d)", node.Bounds.Width, node.Bounds.Height)
	if !node.Visible {
		b.WriteString(" hidden")
	}
	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, depth+1)
	}
}
