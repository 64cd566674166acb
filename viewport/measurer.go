package viewport

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// Measurer reports the current viewport size. ok is false when there is no
// viewport to measure, for example when output is not a terminal.
type Measurer interface {
	Measure() (width, height float64, ok bool)
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func() (width, height float64, ok bool)

// Measure calls f.
func (f MeasurerFunc) Measure() (float64, float64, bool) {
	return f()
}

// Static reports whatever size it was last given. It is how event-driven
// hosts (a bubbletea program, for instance) hand their size to a Driver.
type Static struct {
	mu     sync.Mutex
	width  float64
	height float64
	set    bool
}

// NewStatic returns a Static measurer that has not been given a size yet.
func NewStatic() *Static {
	return &Static{}
}

// Set records a new size.
func (s *Static) Set(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height, s.set = width, height, true
}

// Measure returns the last recorded size; ok is false until Set is called.
func (s *Static) Measure() (float64, float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height, s.set
}

// Terminal measures the terminal attached to a file descriptor, in cells.
type Terminal struct {
	fd int
}

// NewTerminal measures the terminal attached to f.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{fd: int(f.Fd())}
}

// Measure returns the terminal size. ok is false when fd is not a terminal.
func (t *Terminal) Measure() (float64, float64, bool) {
	if !term.IsTerminal(t.fd) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(t.fd)
	if err != nil {
		return 0, 0, false
	}
	return float64(width), float64(height), true
}
