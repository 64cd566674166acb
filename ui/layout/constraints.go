package layout

import "reactive-breakpoints/breakpoint"

// Constraints holds the computed layout constraints for all components.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	// Panel dimensions (computed)
	StateWidth  int
	StateHeight int
	LogWidth    int
	LogHeight   int
	RulerWidth  int
	HelpHeight  int

	// Layout flags
	UseVerticalStack bool // Stack the change log under the state panel (sm and down)
	ShowMinWarning   bool // Terminal is below minimum size
}

// ComputeConstraints calculates layout constraints for a terminal state.
func ComputeConstraints(s breakpoint.State) Constraints {
	width, height := cells(s.Width), cells(s.Height)

	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(s),
		RulerWidth:     width,
		ShowMinWarning: width < MinWidth || height < MinHeight,
	}

	c.HelpHeight = computeHelpHeight(c.Mode)
	contentHeight := max(height-HeaderHeight-RulerHeight-c.HelpHeight, 0)

	if s.SmAndDown {
		c.UseVerticalStack = true
		c.StateWidth = width
		c.LogWidth = width
		c.StateHeight = min(contentHeight, max(contentHeight*2/3, RelationalHideHeight))
		c.LogHeight = contentHeight - c.StateHeight
	} else {
		c.StateWidth = computeStateWidth(width, c.Mode)
		c.LogWidth = width - c.StateWidth
		c.StateHeight = contentHeight
		c.LogHeight = contentHeight
	}

	return c
}

// computeStateWidth calculates the state panel width based on mode.
func computeStateWidth(totalWidth int, mode LayoutMode) int {
	var targetPercent float32

	switch mode {
	case LayoutFull:
		targetPercent = 0.35
	case LayoutStandard:
		targetPercent = 0.45
	default:
		targetPercent = 0.55
	}

	computed := int(float32(totalWidth) * targetPercent)
	return clamp(computed, min(StateMinWidth, totalWidth), min(StateMaxWidth, totalWidth))
}

// computeHelpHeight hides the help line only in the minimal layout.
func computeHelpHeight(mode LayoutMode) int {
	if mode == LayoutMinimal {
		return 0
	}
	return HelpHeight
}

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
