package layout

import "reactive-breakpoints/breakpoint"

// Degradation holds flags indicating which UI features should be hidden or simplified.
type Degradation struct {
	HideRelational bool // List only the active tier, not the and-up/and-down flags
	HideRuler      bool // Drop the threshold ruler (xs)
	HideLog        bool // Drop the change log (minimal mode or no room)

	ShowMinWarning   bool // Terminal too small warning (below MinWidth/MinHeight)
	UseVerticalStack bool // Stack panels vertically (sm and down)
}

// ComputeDegradation calculates which UI features should be degraded.
func ComputeDegradation(c Constraints, s breakpoint.State) Degradation {
	return Degradation{
		HideRelational:   c.StateHeight < RelationalHideHeight,
		HideRuler:        s.XS,
		HideLog:          c.Mode == LayoutMinimal || c.LogHeight < LogMinHeight,
		ShowMinWarning:   c.ShowMinWarning,
		UseVerticalStack: c.UseVerticalStack,
	}
}

// IsCompactMode returns true if the layout should use compact rendering.
func (d Degradation) IsCompactMode() bool {
	return d.HideRelational || d.HideRuler
}

// ShouldShowRelational returns true if the relational flags should be listed.
func (d Degradation) ShouldShowRelational() bool {
	return !d.HideRelational
}

// ShouldShowRuler returns true if the threshold ruler should be drawn.
func (d Degradation) ShouldShowRuler() bool {
	return !d.HideRuler
}

// ShouldShowLog returns true if the change log should be drawn.
func (d Degradation) ShouldShowLog() bool {
	return !d.HideLog
}
