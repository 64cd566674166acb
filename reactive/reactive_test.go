package reactive

import (
	"context"
	"math"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/viewport"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBreakpoints(t *testing.T, width, height float64) (*Breakpoints, *viewport.Static) {
	t.Helper()
	m := viewport.NewStatic()
	m.Set(width, height)
	r := Use(nil, m, WithDelay(10*time.Millisecond))
	t.Cleanup(r.Close)
	return r, m
}

func TestUseStartsFromInitialState(t *testing.T) {
	r, _ := newTestBreakpoints(t, 1024, 600)

	assert.Equal(t, breakpoint.XS, r.Name.Get())
	assert.True(t, r.XS.Get())
	assert.Equal(t, breakpoint.DefaultThresholds.XS, r.Width.Get())
	assert.Equal(t, 10*time.Millisecond, r.Driver().Delay())
}

func TestMountMeasuresViewport(t *testing.T) {
	r, _ := newTestBreakpoints(t, 1024, 600)
	r.Mount()

	assert.Equal(t, breakpoint.LG, r.Name.Get())
	assert.True(t, r.LG.Get())
	assert.False(t, r.XS.Get())
	assert.True(t, r.LgAndDown.Get())
	assert.True(t, r.LgAndUp.Get())
	assert.True(t, r.MdAndUp.Get())
	assert.False(t, r.MdAndDown.Get())
	assert.Equal(t, float64(1024), r.Width.Get())
	assert.Equal(t, float64(600), r.Height.Get())
	assert.Equal(t, r.State(), breakpoint.Derive(breakpoint.LG, 1024, 600))
}

func TestRefsMatchEngineStateForEveryTier(t *testing.T) {
	r, _ := newTestBreakpoints(t, 0, 0)

	for _, w := range []float64{100, 500, 700, 1000, 1200, 1400, 2000} {
		r.Engine().Update(w, 10)
		s := r.State()

		assert.Equal(t, s.Name, r.Name.Get())
		assert.Equal(t, s.XS, r.XS.Get())
		assert.Equal(t, s.SM, r.SM.Get())
		assert.Equal(t, s.MD, r.MD.Get())
		assert.Equal(t, s.LG, r.LG.Get())
		assert.Equal(t, s.XL, r.XL.Get())
		assert.Equal(t, s.XXL, r.XXL.Get())
		assert.Equal(t, s.SmAndDown, r.SmAndDown.Get())
		assert.Equal(t, s.SmAndUp, r.SmAndUp.Get())
		assert.Equal(t, s.XlAndDown, r.XlAndDown.Get())
		assert.Equal(t, s.XlAndUp, r.XlAndUp.Get())
		assert.Equal(t, w, r.Width.Get())
	}
}

func TestRefWatchFiresOnlyOnChange(t *testing.T) {
	r, _ := newTestBreakpoints(t, 0, 0)

	var names []breakpoint.Name
	unwatch := r.Name.Watch(func(n breakpoint.Name) { names = append(names, n) })

	r.Engine().Update(700, 100)
	r.Engine().Update(710, 100)
	r.Engine().Update(2000, 100)
	assert.Equal(t, []breakpoint.Name{breakpoint.MD, breakpoint.XXL}, names)

	unwatch()
	r.Engine().Update(100, 100)
	assert.Len(t, names, 2)
}

func TestRefIgnoresRepeatedNaN(t *testing.T) {
	ref := newRef(0.0)
	var calls int
	ref.Watch(func(float64) { calls++ })

	ref.set(math.NaN())
	ref.set(math.NaN())

	assert.Equal(t, 1, calls)
	assert.True(t, math.IsNaN(ref.Get()))
}

func TestHandlersSeeUpdatedRefs(t *testing.T) {
	r, _ := newTestBreakpoints(t, 0, 0)

	var seen breakpoint.Name
	r.WatchFunc(func(breakpoint.State) { seen = r.Name.Get() })

	r.Engine().Update(1024, 100)
	assert.Equal(t, breakpoint.LG, seen)
}

func TestWatchDeliversOncePerChange(t *testing.T) {
	r, _ := newTestBreakpoints(t, 100, 100)

	var calls int
	r.WatchFunc(func(breakpoint.State) { calls++ })

	r.Mount()
	r.Engine().Update(100, 100)
	assert.Equal(t, 1, calls)
}

func TestOnResizeIsDebounced(t *testing.T) {
	r, m := newTestBreakpoints(t, 100, 100)
	r.Mount()

	m.Set(2000, 900)
	r.OnResize()
	r.OnResize()

	require.Eventually(t, func() bool {
		return r.XXL.Get()
	}, time.Second, 5*time.Millisecond)
}

func TestUnmountStopsResizeHandling(t *testing.T) {
	r, m := newTestBreakpoints(t, 100, 100)
	r.Mount()
	r.Unmount()

	m.Set(2000, 900)
	r.OnResize()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, breakpoint.XS, r.Name.Get())
}

func TestWatchContextUnwatchesOnCancel(t *testing.T) {
	r, _ := newTestBreakpoints(t, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	var calls int
	r.WatchContext(ctx, func(breakpoint.State) { calls++ })
	require.Equal(t, 1, r.Observer().HandlersCount())

	r.Engine().Update(700, 100)
	cancel()

	require.Eventually(t, func() bool {
		return r.Observer().HandlersCount() == 0
	}, time.Second, 5*time.Millisecond)

	r.Engine().Update(2000, 100)
	assert.Equal(t, 1, calls)
}

func TestWatchContextManualUnwatch(t *testing.T) {
	r, _ := newTestBreakpoints(t, 0, 0)

	unwatch := r.WatchContext(context.Background(), func(breakpoint.State) {})
	unwatch()
	unwatch()

	assert.Equal(t, 0, r.Observer().HandlersCount())
}

func TestCloseDetaches(t *testing.T) {
	m := viewport.NewStatic()
	r := Use(nil, m)

	var calls int
	r.WatchFunc(func(breakpoint.State) { calls++ })
	r.Close()

	r.Engine().Update(2000, 100)
	assert.Equal(t, 0, calls)
	assert.Equal(t, breakpoint.XS, r.Name.Get())
}
