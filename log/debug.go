package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Debug mode is switched on with BP_DEBUG=1.
var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "breakpoints-debug.log")

// InitDebug initializes debug logging if BP_DEBUG=1 is set.
// Call this after Initialize() in main.
func InitDebug() {
	if os.Getenv("BP_DEBUG") != "1" {
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Println("wrote debug logs to " + debugLogFileName)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// BreakpointTrace logs engine updates.
func BreakpointTrace(format string, v ...interface{}) {
	trace("BREAKPOINT", format, v...)
}

// ObserverTrace logs observer deliveries and handler lifecycle.
func ObserverTrace(format string, v ...interface{}) {
	trace("OBSERVER", format, v...)
}

// RenderTrace logs render events for one component.
func RenderTrace(component, format string, v ...interface{}) {
	trace("RENDER:"+component, format, v...)
}

func trace(tag, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
	}
}

// slowFrame is one frame at 60Hz.
const slowFrame = 16 * time.Millisecond

// RenderProfiler times View and the components it draws. It records
// nothing unless debug mode is on.
type RenderProfiler struct {
	mu         sync.Mutex
	components map[string]*ComponentMetrics
	frames     int64
	frameTime  time.Duration
}

// ComponentMetrics are the render timings of one component.
type ComponentMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MaxTime     time.Duration
}

func (m *ComponentMetrics) avg() time.Duration {
	if m.RenderCount == 0 {
		return 0
	}
	return m.TotalTime / time.Duration(m.RenderCount)
}

var profiler = &RenderProfiler{
	components: make(map[string]*ComponentMetrics),
}

func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender starts timing component. Call the returned func when the
// render is done.
func (p *RenderProfiler) StartRender(component string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() { p.record(component, time.Since(start)) }
}

func (p *RenderProfiler) record(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m := p.components[component]
	if m == nil {
		m = &ComponentMetrics{Name: component}
		p.components[component] = m
	}
	m.RenderCount++
	m.TotalTime += elapsed
	m.MaxTime = max(m.MaxTime, elapsed)
}

// RecordFrame adds one full View call. Slow frames are logged.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	p.frames++
	p.frameTime += elapsed
	p.mu.Unlock()

	if elapsed > slowFrame {
		Debug("[PERF] slow frame: %v", elapsed)
	}
}

// GetStats summarizes frames and components, most expensive component first.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n=== Render Profile ===\nframes: %d\n", p.frames)
	if p.frames > 0 {
		fmt.Fprintf(&sb, "avg frame: %v\n", p.frameTime/time.Duration(p.frames))
	}

	sorted := make([]*ComponentMetrics, 0, len(p.components))
	for _, m := range p.components {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})
	for _, m := range sorted {
		fmt.Fprintf(&sb, "  %-8s count=%d total=%v avg=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, m.avg(), m.MaxTime)
	}
	return sb.String()
}

// LogStats writes GetStats to the debug log.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset drops everything recorded so far.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.components = make(map[string]*ComponentMetrics)
	p.frames = 0
	p.frameTime = 0
}
