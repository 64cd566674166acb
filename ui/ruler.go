package ui

import (
	"math"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/log"
	"strings"
)

const (
	rulerChar = "━"
	gapChar   = "╌"
	// The ruler extends this far past the xxl threshold.
	rulerOverscan = 1.25
)

// Ruler draws the threshold scale as a colored bar with a marker at the
// current width. Two lines: marker, then bar.
type Ruler struct {
	width      int
	thresholds breakpoint.Threshold
	state      breakpoint.State
}

func NewRuler(thresholds breakpoint.Threshold) *Ruler {
	return &Ruler{thresholds: thresholds}
}

func (r *Ruler) SetWidth(width int) {
	r.width = width
}

func (r *Ruler) SetState(s breakpoint.State) {
	r.state = s
}

// scale is the value at the right edge of the ruler.
func (r *Ruler) scale() float64 {
	edge := r.thresholds.XXL * rulerOverscan
	if math.IsNaN(edge) || math.IsInf(edge, 0) || edge <= 0 {
		edge = 1
	}
	if w := r.state.Width; !math.IsNaN(w) && !math.IsInf(w, 0) && w > edge {
		edge = w
	}
	return edge
}

// Segments returns the tier drawn in each column.
func (r *Ruler) Segments() []breakpoint.Name {
	if r.width <= 0 {
		return nil
	}
	scale := r.scale()
	names := make([]breakpoint.Name, r.width)
	for c := range names {
		v := (float64(c) + 0.5) / float64(r.width) * scale
		names[c] = breakpoint.NameFromWidth(r.thresholds, v)
	}
	return names
}

// MarkerColumn returns the column of the current width, or -1 when it
// cannot be placed.
func (r *Ruler) MarkerColumn() int {
	w := r.state.Width
	if r.width <= 0 || math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return -1
	}
	col := int(w / r.scale() * float64(r.width))
	return min(col, r.width-1)
}

// inGap reports whether v lies in the unclassified range between xl and xxl.
func (r *Ruler) inGap(v float64) bool {
	return v > r.thresholds.XL && v < r.thresholds.XXL
}

func (r *Ruler) String() string {
	defer log.GetProfiler().StartRender("ruler")()
	if r.width <= 0 {
		return ""
	}

	var marker strings.Builder
	if col := r.MarkerColumn(); col >= 0 {
		marker.WriteString(strings.Repeat(" ", col))
		marker.WriteString(TierStyle(r.state.Name).Render(IconMarker))
	}

	scale := r.scale()
	var bar strings.Builder
	for c, name := range r.Segments() {
		ch := rulerChar
		v := (float64(c) + 0.5) / float64(r.width) * scale
		if r.inGap(v) {
			ch = gapChar
		}
		bar.WriteString(TierStyle(name).Render(ch))
	}

	return marker.String() + "\n" + bar.String()
}
