package breakpoint

import "time"

// Breakpoint names, smallest to largest.
const (
	XS  Name = "xs"
	SM  Name = "sm"
	MD  Name = "md"
	LG  Name = "lg"
	XL  Name = "xl"
	XXL Name = "xxl"
)

// Names lists every breakpoint in ascending order. Resolution and the derived
// flags both depend on this order.
var Names = [...]Name{XS, SM, MD, LG, XL, XXL}

// DefaultThresholds are the upper pixel boundaries used when none are given.
var DefaultThresholds = Threshold{
	XS:  320,
	SM:  640,
	MD:  768,
	LG:  1024,
	XL:  1280,
	XXL: 1536,
}

// ResizeDelay is how long a resize driver waits for the viewport to settle
// before measuring it again.
const ResizeDelay = 300 * time.Millisecond
