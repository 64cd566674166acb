package breakpoint

import (
	"fmt"
	"math"
)

// Name identifies a breakpoint tier.
type Name string

func (n Name) String() string {
	return string(n)
}

// Index returns the position of n in Names, or -1 for an unknown name.
func (n Name) Index() int {
	for i, name := range Names {
		if name == n {
			return i
		}
	}
	return -1
}

// ParseName validates s as a breakpoint name.
func ParseName(s string) (Name, error) {
	n := Name(s)
	if n.Index() < 0 {
		return "", fmt.Errorf("unknown breakpoint %q (expected one of xs, sm, md, lg, xl, xxl)", s)
	}
	return n, nil
}

// Threshold maps every breakpoint to its upper pixel boundary. Values are
// expected to be non-decreasing from XS to XXL; nothing enforces it.
type Threshold struct {
	XS  float64 `json:"xs"`
	SM  float64 `json:"sm"`
	MD  float64 `json:"md"`
	LG  float64 `json:"lg"`
	XL  float64 `json:"xl"`
	XXL float64 `json:"xxl"`
}

// Get returns the boundary for name, or 0 for an unknown name.
func (t Threshold) Get(name Name) float64 {
	switch name {
	case XS:
		return t.XS
	case SM:
		return t.SM
	case MD:
		return t.MD
	case LG:
		return t.LG
	case XL:
		return t.XL
	case XXL:
		return t.XXL
	default:
		return 0
	}
}

// Ordered reports whether the boundaries are non-decreasing.
func (t Threshold) Ordered() bool {
	for i := 1; i < len(Names); i++ {
		if t.Get(Names[i]) < t.Get(Names[i-1]) {
			return false
		}
	}
	return true
}

// State is a snapshot of the classification for one viewport size.
type State struct {
	Name Name `json:"name"`

	XS  bool `json:"xs"`
	SM  bool `json:"sm"`
	MD  bool `json:"md"`
	LG  bool `json:"lg"`
	XL  bool `json:"xl"`
	XXL bool `json:"xxl"`

	SmAndDown bool `json:"smAndDown"`
	SmAndUp   bool `json:"smAndUp"`
	MdAndDown bool `json:"mdAndDown"`
	MdAndUp   bool `json:"mdAndUp"`
	LgAndDown bool `json:"lgAndDown"`
	LgAndUp   bool `json:"lgAndUp"`
	XlAndDown bool `json:"xlAndDown"`
	XlAndUp   bool `json:"xlAndUp"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Derive builds the full state for name. The flags come from name alone.
func Derive(name Name, width, height float64) State {
	var own [len(Names)]bool
	for i, n := range Names {
		own[i] = name == n
	}

	return State{
		Name:      name,
		XS:        own[0],
		SM:        own[1],
		MD:        own[2],
		LG:        own[3],
		XL:        own[4],
		XXL:       own[5],
		SmAndDown: andDown(own, 1),
		SmAndUp:   andUp(own, 1),
		MdAndDown: andDown(own, 2),
		MdAndUp:   andUp(own, 2),
		LgAndDown: andDown(own, 3),
		LgAndUp:   andUp(own, 3),
		XlAndDown: andDown(own, 4),
		XlAndUp:   andUp(own, 4),
		Width:     width,
		Height:    height,
	}
}

// andDown is true when a tier at or below i is active and none above it is.
func andDown(own [len(Names)]bool, i int) bool {
	return anyTrue(own[:i+1]) && !anyTrue(own[i+1:])
}

// andUp is true when a tier at or above i is active and none below it is.
func andUp(own [len(Names)]bool, i int) bool {
	return !anyTrue(own[:i]) && anyTrue(own[i:])
}

func anyTrue(flags []bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}

// Own reports the own-tier flag for name.
func (s State) Own(name Name) bool {
	switch name {
	case XS:
		return s.XS
	case SM:
		return s.SM
	case MD:
		return s.MD
	case LG:
		return s.LG
	case XL:
		return s.XL
	case XXL:
		return s.XXL
	default:
		return false
	}
}

// Equal compares two snapshots field by field. NaN dimensions compare equal
// to each other so that repeating a degenerate update is not a change.
func (s State) Equal(o State) bool {
	a, b := s, o
	a.Width, a.Height, b.Width, b.Height = 0, 0, 0, 0
	return a == b && sameFloat(s.Width, o.Width) && sameFloat(s.Height, o.Height)
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
