// Package breakpoint classifies a viewport size into one of six named tiers
// (xs, sm, md, lg, xl, xxl) and derives the relational flags UI code keys off,
// such as "md and up". It never measures anything itself: a driver feeds it
// width and height through Update.
package breakpoint

import (
	"reactive-breakpoints/log"
	"sync"
)

// Breakpoint holds the thresholds and the last viewport size it was given.
// It is safe for concurrent use.
type Breakpoint struct {
	thresholds Threshold

	mu     sync.RWMutex
	width  float64
	height float64
	name   Name

	hooksMu  sync.Mutex
	hooks    []hook
	nextHook uint64
}

type hook struct {
	id uint64
	fn func(State)
}

// New creates a Breakpoint. A nil thresholds uses DefaultThresholds. The
// initial size is the xs boundary in both dimensions, which resolves to xs.
func New(thresholds *Threshold) *Breakpoint {
	t := DefaultThresholds
	if thresholds != nil {
		t = *thresholds
	}

	return &Breakpoint{
		thresholds: t,
		width:      t.XS,
		height:     t.XS,
		name:       XS,
	}
}

// NameFromWidth resolves width against thresholds. Boundaries are checked in
// ascending order and the first match wins. Widths above xl only resolve to
// xxl once they reach the xxl boundary; anything left over, NaN included,
// falls back to xs.
func NameFromWidth(thresholds Threshold, width float64) Name {
	switch {
	case width <= thresholds.XS:
		return XS
	case width <= thresholds.SM:
		return SM
	case width <= thresholds.MD:
		return MD
	case width <= thresholds.LG:
		return LG
	case width <= thresholds.XL:
		return XL
	case width >= thresholds.XXL:
		return XXL
	default:
		return XS
	}
}

// Update records a new viewport size and recomputes the classification.
// Registered update hooks run after the engine lock is released.
func (b *Breakpoint) Update(width, height float64) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.name = NameFromWidth(b.thresholds, width)
	state := Derive(b.name, b.width, b.height)
	b.mu.Unlock()

	log.BreakpointTrace("update %vx%v -> %s", width, height, state.Name)

	b.hooksMu.Lock()
	hooks := make([]hook, len(b.hooks))
	copy(hooks, b.hooks)
	b.hooksMu.Unlock()

	for _, h := range hooks {
		h.fn(state)
	}
}

// State returns a consistent snapshot of the current classification.
func (b *Breakpoint) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Derive(b.name, b.width, b.height)
}

// Name returns the active breakpoint name.
func (b *Breakpoint) Name() Name {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.name
}

// Width returns the last width given to Update.
func (b *Breakpoint) Width() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.width
}

// Height returns the last height given to Update.
func (b *Breakpoint) Height() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.height
}

// Thresholds returns the boundaries the engine was built with.
func (b *Breakpoint) Thresholds() Threshold {
	return b.thresholds
}

// OnUpdate registers fn to be called with the fresh snapshot after every
// Update, whether or not the classification changed. The returned function
// removes the hook and may be called more than once.
func (b *Breakpoint) OnUpdate(fn func(State)) (cancel func()) {
	b.hooksMu.Lock()
	b.nextHook++
	id := b.nextHook
	b.hooks = append(b.hooks, hook{id: id, fn: fn})
	b.hooksMu.Unlock()

	return func() {
		b.hooksMu.Lock()
		defer b.hooksMu.Unlock()
		for i, h := range b.hooks {
			if h.id == id {
				b.hooks = append(b.hooks[:i:i], b.hooks[i+1:]...)
				return
			}
		}
	}
}
