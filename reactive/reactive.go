// Package reactive exposes every field of a breakpoint state as its own
// observable value and wires the engine, observer and resize driver
// together behind a mount/unmount lifecycle.
package reactive

import (
	"context"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/observer"
	"reactive-breakpoints/viewport"
	"time"
)

// Breakpoints holds one Ref per state field.
type Breakpoints struct {
	Name *Ref[breakpoint.Name]

	XS  *Ref[bool]
	SM  *Ref[bool]
	MD  *Ref[bool]
	LG  *Ref[bool]
	XL  *Ref[bool]
	XXL *Ref[bool]

	SmAndDown *Ref[bool]
	SmAndUp   *Ref[bool]
	MdAndDown *Ref[bool]
	MdAndUp   *Ref[bool]
	LgAndDown *Ref[bool]
	LgAndUp   *Ref[bool]
	XlAndDown *Ref[bool]
	XlAndUp   *Ref[bool]

	Width  *Ref[float64]
	Height *Ref[float64]

	engine   *breakpoint.Breakpoint
	observer *observer.Observer
	driver   *viewport.Driver
	cancel   func()
}

type options struct {
	delay time.Duration
}

// Option configures Use.
type Option func(*options)

// WithDelay sets the resize debounce delay.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		o.delay = d
	}
}

// Use builds the engine for thresholds (nil for the defaults), an observer
// on it, and a resize driver reading m. Call Mount to take the first
// measurement and start accepting resize events.
func Use(thresholds *breakpoint.Threshold, m viewport.Measurer, opts ...Option) *Breakpoints {
	o := options{delay: breakpoint.ResizeDelay}
	for _, opt := range opts {
		opt(&o)
	}

	engine := breakpoint.New(thresholds)
	s := engine.State()

	r := &Breakpoints{
		Name:      newRef(s.Name),
		XS:        newRef(s.XS),
		SM:        newRef(s.SM),
		MD:        newRef(s.MD),
		LG:        newRef(s.LG),
		XL:        newRef(s.XL),
		XXL:       newRef(s.XXL),
		SmAndDown: newRef(s.SmAndDown),
		SmAndUp:   newRef(s.SmAndUp),
		MdAndDown: newRef(s.MdAndDown),
		MdAndUp:   newRef(s.MdAndUp),
		LgAndDown: newRef(s.LgAndDown),
		LgAndUp:   newRef(s.LgAndUp),
		XlAndDown: newRef(s.XlAndDown),
		XlAndUp:   newRef(s.XlAndUp),
		Width:     newRef(s.Width),
		Height:    newRef(s.Height),
		engine:    engine,
		driver:    viewport.NewDriver(engine, m, o.delay),
	}
	// Refs update before observer handlers run, so handlers can read them.
	r.cancel = engine.OnUpdate(r.apply)
	r.observer = observer.New(engine)

	return r
}

func (r *Breakpoints) apply(s breakpoint.State) {
	r.Name.set(s.Name)
	r.XS.set(s.XS)
	r.SM.set(s.SM)
	r.MD.set(s.MD)
	r.LG.set(s.LG)
	r.XL.set(s.XL)
	r.XXL.set(s.XXL)
	r.SmAndDown.set(s.SmAndDown)
	r.SmAndUp.set(s.SmAndUp)
	r.MdAndDown.set(s.MdAndDown)
	r.MdAndUp.set(s.MdAndUp)
	r.LgAndDown.set(s.LgAndDown)
	r.LgAndUp.set(s.LgAndUp)
	r.XlAndDown.set(s.XlAndDown)
	r.XlAndUp.set(s.XlAndUp)
	r.Width.set(s.Width)
	r.Height.set(s.Height)
}

// State returns the engine's current snapshot.
func (r *Breakpoints) State() breakpoint.State {
	return r.engine.State()
}

// Watch registers h with the observer.
func (r *Breakpoints) Watch(h observer.Handler) (unwatch func()) {
	return r.observer.Watch(h)
}

// WatchFunc registers fn with the observer.
func (r *Breakpoints) WatchFunc(fn func(breakpoint.State)) (unwatch func()) {
	return r.observer.WatchFunc(fn)
}

// WatchContext registers fn and unregisters it when ctx is done, tying the
// handler to the lifetime of whatever owns ctx.
func (r *Breakpoints) WatchContext(ctx context.Context, fn func(breakpoint.State)) (unwatch func()) {
	unwatch = r.observer.WatchFunc(fn)
	stop := context.AfterFunc(ctx, unwatch)
	return func() {
		stop()
		unwatch()
	}
}

// Mount measures the viewport and starts accepting resize events.
func (r *Breakpoints) Mount() {
	r.driver.Init()
}

// Unmount stops accepting resize events.
func (r *Breakpoints) Unmount() {
	r.driver.Destroy()
}

// OnResize forwards a resize event to the debounced driver.
func (r *Breakpoints) OnResize() {
	r.driver.OnResize()
}

// Engine returns the underlying breakpoint.
func (r *Breakpoints) Engine() *breakpoint.Breakpoint {
	return r.engine
}

// Observer returns the observer the Watch methods register with.
func (r *Breakpoints) Observer() *observer.Observer {
	return r.observer
}

// Driver returns the resize driver.
func (r *Breakpoints) Driver() *viewport.Driver {
	return r.driver
}

// Close unmounts and detaches everything from the engine.
func (r *Breakpoints) Close() {
	r.Unmount()
	r.cancel()
	r.observer.Close()
}
