package layout

import "reactive-breakpoints/breakpoint"

// TerminalThresholds classify a terminal by its width in cells. xxl starts
// one cell above xl so that no terminal width falls between the two.
var TerminalThresholds = breakpoint.Threshold{
	XS:  40,
	SM:  60,
	MD:  80,
	LG:  100,
	XL:  120,
	XXL: 121,
}

// Minimum usable terminal size.
const (
	MinWidth  = 40
	MinHeight = 12
)

// Height breakpoints
const (
	// StandardHeight is the threshold for the standard layout.
	StandardHeight = 24

	// FullHeight is the threshold for the full layout.
	FullHeight = 36
)

// Fixed rows
const (
	HeaderHeight = 2
	RulerHeight  = 2
	HelpHeight   = 1
)

// State panel constraints
const (
	// StateMinWidth fits the longest flag label plus its value.
	StateMinWidth = 24

	// StateMaxWidth keeps the panel from stretching on very wide terminals.
	StateMaxWidth = 48

	// RelationalHideHeight is the panel height below which the relational
	// flags are dropped and only the active tier is listed.
	RelationalHideHeight = 18
)

// LogMinHeight is the smallest change log worth drawing.
const LogMinHeight = 3
