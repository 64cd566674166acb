// Package layout decides how the TUI arranges itself for the terminal's
// current breakpoint state.
package layout

import "reactive-breakpoints/breakpoint"

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutFull is for xl and up terminals with room to spare.
	LayoutFull LayoutMode = iota

	// LayoutStandard is for md and lg terminals.
	LayoutStandard

	// LayoutCompact is for sm terminals or short ones.
	LayoutCompact

	// LayoutMinimal is for xs terminals or those below the minimum height.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutFull:
		return "full"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode picks a layout from the width tier and the height, using
// whichever is more restrictive.
func DetermineMode(s breakpoint.State) LayoutMode {
	widthMode := determineWidthMode(s)
	heightMode := determineHeightMode(cells(s.Height))

	// Higher value = more restrictive
	if widthMode > heightMode {
		return widthMode
	}
	return heightMode
}

func determineWidthMode(s breakpoint.State) LayoutMode {
	switch {
	case s.XlAndUp:
		return LayoutFull
	case s.MdAndUp:
		return LayoutStandard
	case s.SM:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

func determineHeightMode(height int) LayoutMode {
	switch {
	case height >= FullHeight:
		return LayoutFull
	case height >= StandardHeight:
		return LayoutStandard
	case height >= MinHeight:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

const maxCells = 1 << 16

// cells converts a measured dimension to a whole number of cells. Negative
// and NaN values count as zero; huge values are capped.
func cells(v float64) int {
	switch {
	case !(v > 0):
		return 0
	case v > maxCells:
		return maxCells
	default:
		return int(v)
	}
}
