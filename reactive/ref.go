package reactive

import "sync"

// Ref is a single observable value. Watchers run only when the value
// actually changes.
type Ref[T comparable] struct {
	mu       sync.Mutex
	value    T
	watchers []refWatcher[T]
	nextID   uint64
}

type refWatcher[T comparable] struct {
	id uint64
	fn func(T)
}

func newRef[T comparable](v T) *Ref[T] {
	return &Ref[T]{value: v}
}

// Get returns the current value.
func (r *Ref[T]) Get() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Watch calls fn with each new value. The returned function stops watching.
func (r *Ref[T]) Watch(fn func(T)) (unwatch func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.watchers = append(r.watchers, refWatcher[T]{id: id, fn: fn})
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, w := range r.watchers {
			if w.id == id {
				r.watchers = append(r.watchers[:i:i], r.watchers[i+1:]...)
				return
			}
		}
	}
}

func (r *Ref[T]) set(v T) {
	r.mu.Lock()
	// v != v only holds for NaN, which must not count as a change.
	if v == r.value || (v != v && r.value != r.value) {
		r.mu.Unlock()
		return
	}
	r.value = v
	watchers := make([]refWatcher[T], len(r.watchers))
	copy(watchers, r.watchers)
	r.mu.Unlock()

	for _, w := range watchers {
		w.fn(v)
	}
}
