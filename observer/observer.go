// Package observer delivers breakpoint changes to registered handlers.
//
// An Observer subscribes to a breakpoint.Breakpoint and calls its handlers
// whenever an update produces a state that differs from the last one it saw.
// Delivery can be paused and resumed; Notify is an unconditional broadcast
// that ignores the pause switch.
package observer

import (
	"fmt"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/log"
	"reflect"
	"strings"
	"sync"
)

// Handler receives breakpoint states.
type Handler interface {
	HandleBreakpoint(state breakpoint.State)
}

// HandlerFunc adapts a function to Handler. Function values have no
// identity, so each registration of a HandlerFunc is a separate one.
type HandlerFunc func(state breakpoint.State)

// HandleBreakpoint calls f(state).
func (f HandlerFunc) HandleBreakpoint(state breakpoint.State) {
	f(state)
}

type registration struct {
	id      uint64
	handler Handler
}

// Observer watches a breakpoint for changes. It does not own the breakpoint.
type Observer struct {
	breakpoint *breakpoint.Breakpoint

	mu       sync.Mutex
	handlers []registration
	nextID   uint64

	stateMu  sync.Mutex
	last     breakpoint.State
	watching bool
	cancel   func()
}

// New binds an observer to b. It starts out watching.
func New(b *breakpoint.Breakpoint) *Observer {
	o := &Observer{
		breakpoint: b,
		last:       b.State(),
		watching:   true,
	}
	o.cancel = b.OnUpdate(o.onUpdate)
	return o
}

// onUpdate is the engine hook. The last observed state is tracked even while
// paused so resuming does not replay a change that happened during the pause.
func (o *Observer) onUpdate(state breakpoint.State) {
	o.stateMu.Lock()
	changed := !o.last.Equal(state)
	if changed {
		o.last = state
	}
	deliver := changed && o.watching
	o.stateMu.Unlock()

	if !changed {
		return
	}
	if !deliver {
		log.ObserverTrace("paused, dropping change to %s", state.Name)
		return
	}

	if err := o.Notify(state); err != nil {
		log.ErrorLog.Printf("breakpoint handler failed: %v", err)
	}
}

// Watch registers h and returns a function that unregisters it. Registering
// a handler that is already registered is a no-op, and the returned function
// then removes the existing registration. The returned function is safe to
// call more than once.
//
// Handlers that cannot be compared (funcs, maps, slices, or structs holding
// one of those behind an interface) cannot be matched against earlier
// registrations and are always added.
func (o *Observer) Watch(h Handler) (unwatch func()) {
	id := o.register(h)

	var once sync.Once
	return func() {
		once.Do(func() { o.remove(id) })
	}
}

// WatchFunc registers fn. Every call is a separate registration.
func (o *Observer) WatchFunc(fn func(state breakpoint.State)) (unwatch func()) {
	return o.Watch(HandlerFunc(fn))
}

func (o *Observer) register(h Handler) uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	if id, ok := o.lookup(h); ok {
		return id
	}
	o.nextID++
	o.handlers = append(o.handlers, registration{id: o.nextID, handler: h})
	log.ObserverTrace("watch: %d handlers", len(o.handlers))
	return o.nextID
}

func (o *Observer) lookup(h Handler) (uint64, bool) {
	t := reflect.TypeOf(h)
	if t != nil && !t.Comparable() {
		return 0, false
	}
	for _, r := range o.handlers {
		if reflect.TypeOf(r.handler) == t && sameHandler(r.handler, h) {
			return r.id, true
		}
	}
	return 0, false
}

// sameHandler compares two handlers of the same comparable type. A struct
// type is comparable even when an interface field holds a func, and == then
// panics at run time; such handlers count as different.
func sameHandler(a, b Handler) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

func (o *Observer) remove(id uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, r := range o.handlers {
		if r.id == id {
			o.handlers = append(o.handlers[:i:i], o.handlers[i+1:]...)
			log.ObserverTrace("unwatch: %d handlers", len(o.handlers))
			return
		}
	}
}

// Notify calls every registered handler with state, in registration order,
// whether or not the observer is paused. The handler list is snapshotted
// first, so handlers may watch or unwatch during delivery.
//
// A panicking handler does not stop delivery to the rest; the panics are
// returned as a *HandlerPanicError.
func (o *Observer) Notify(state breakpoint.State) error {
	o.mu.Lock()
	handlers := make([]Handler, len(o.handlers))
	for i, r := range o.handlers {
		handlers[i] = r.handler
	}
	o.mu.Unlock()

	log.ObserverTrace("notify %s to %d handlers", state.Name, len(handlers))

	var panics []interface{}
	for _, h := range handlers {
		if r := deliver(h, state); r != nil {
			panics = append(panics, r)
		}
	}

	if len(panics) > 0 {
		return &HandlerPanicError{State: state, Panics: panics}
	}
	return nil
}

func deliver(h Handler, state breakpoint.State) (recovered interface{}) {
	defer func() {
		recovered = recover()
	}()
	h.HandleBreakpoint(state)
	return nil
}

// Pause stops delivery of detected changes.
func (o *Observer) Pause() {
	o.stateMu.Lock()
	defer o.stateMu.Unlock()
	o.watching = false
}

// Resume restarts delivery of detected changes.
func (o *Observer) Resume() {
	o.stateMu.Lock()
	defer o.stateMu.Unlock()
	o.watching = true
}

// IsWatching reports whether detected changes are being delivered.
func (o *Observer) IsWatching() bool {
	o.stateMu.Lock()
	defer o.stateMu.Unlock()
	return o.watching
}

// HandlersCount returns the number of registered handlers.
func (o *Observer) HandlersCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.handlers)
}

// Breakpoint returns the observed breakpoint.
func (o *Observer) Breakpoint() *breakpoint.Breakpoint {
	return o.breakpoint
}

// Close detaches the observer from its breakpoint. Registered handlers are
// kept and can still be reached through Notify.
func (o *Observer) Close() {
	o.stateMu.Lock()
	cancel := o.cancel
	o.cancel = nil
	o.stateMu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// HandlerPanicError reports handlers that panicked during a Notify.
type HandlerPanicError struct {
	State  breakpoint.State
	Panics []interface{}
}

func (e *HandlerPanicError) Error() string {
	msgs := make([]string, len(e.Panics))
	for i, p := range e.Panics {
		msgs[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("%d handler(s) panicked on %s: %s", len(e.Panics), e.State.Name, strings.Join(msgs, "; "))
}
