// Package viewport measures the host viewport and feeds it to a breakpoint.
// Resize notifications are debounced so a burst of events results in a
// single measurement once the viewport settles.
package viewport

import (
	"context"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/log"
	"sync"
	"time"
)

// Driver connects a Measurer to a Breakpoint.
type Driver struct {
	breakpoint *breakpoint.Breakpoint
	measurer   Measurer
	delay      time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	listening bool
}

// NewDriver creates a driver. A delay of zero or less uses
// breakpoint.ResizeDelay.
func NewDriver(b *breakpoint.Breakpoint, m Measurer, delay time.Duration) *Driver {
	if delay <= 0 {
		delay = breakpoint.ResizeDelay
	}
	return &Driver{
		breakpoint: b,
		measurer:   m,
		delay:      delay,
	}
}

// Delay returns the debounce delay.
func (d *Driver) Delay() time.Duration {
	return d.delay
}

// Refresh measures the viewport and updates the breakpoint right away. It
// returns false, leaving the breakpoint untouched, when there is no viewport.
func (d *Driver) Refresh() bool {
	width, height, ok := d.measurer.Measure()
	if !ok {
		log.BreakpointTrace("no viewport, skipping refresh")
		return false
	}
	d.breakpoint.Update(width, height)
	return true
}

// OnResize schedules a Refresh after the debounce delay, replacing any
// pending one. It does nothing unless the driver is listening.
func (d *Driver) OnResize() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if !d.listening {
		return
	}

	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := d.timer == t
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			d.Refresh()
		}
	})
	d.timer = t
}

// Init takes an initial measurement and starts accepting resize events.
func (d *Driver) Init() {
	d.Refresh()

	d.mu.Lock()
	d.listening = true
	d.mu.Unlock()
}

// Destroy stops accepting resize events and drops any pending refresh.
func (d *Driver) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.listening = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Listening reports whether resize events are being accepted.
func (d *Driver) Listening() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.listening
}

// Pending reports whether a debounced refresh is scheduled.
func (d *Driver) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Run initializes the driver and forwards terminal resize events to
// OnResize until ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	d.Init()
	defer d.Destroy()

	events := resizeEvents(ctx, d.measurer)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-events:
			d.OnResize()
		}
	}
}
