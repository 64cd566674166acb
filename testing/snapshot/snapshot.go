// Package snapshot compares rendered TUI output against golden files and
// measures it in terminal cells.
package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/ansi"
)

var (
	csiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	oscRegex = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// GoldenDir is where golden files live unless WithDir says otherwise.
const GoldenDir = "testdata/golden"

// UpdateEnv rewrites golden files instead of comparing when set to 1.
const UpdateEnv = "UPDATE_GOLDEN"

// Snap checks rendered frames for one test.
type Snap struct {
	t      *testing.T
	dir    string
	update bool
}

func New(t *testing.T) *Snap {
	return &Snap{
		t:      t,
		dir:    GoldenDir,
		update: os.Getenv(UpdateEnv) == "1",
	}
}

// WithDir points the snap at another golden directory.
func (s *Snap) WithDir(dir string) *Snap {
	s.dir = dir
	return s
}

func (s *Snap) path(name string) string {
	return filepath.Join(s.dir, name+".golden")
}

// Assert compares the plain text of frame with the golden file called name.
func (s *Snap) Assert(name, frame string) {
	s.t.Helper()

	got := Plain(frame)
	if s.update {
		s.write(name, got)
		return
	}

	want, err := os.ReadFile(s.path(name))
	switch {
	case os.IsNotExist(err):
		s.t.Fatalf("no golden file %s, run with %s=1 to create it.\ngot:\n%s", s.path(name), UpdateEnv, got)
	case err != nil:
		s.t.Fatalf("read golden file: %v", err)
	}

	if string(want) != got {
		s.t.Errorf("frame %s differs from golden file\n\nwant:\n%s\n\ngot:\n%s", name, want, got)
	}
}

func (s *Snap) write(name, plain string) {
	s.t.Helper()
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		s.t.Fatalf("create golden dir: %v", err)
	}
	if err := os.WriteFile(s.path(name), []byte(plain), 0644); err != nil {
		s.t.Fatalf("write golden file: %v", err)
	}
	s.t.Logf("updated %s", s.path(name))
}

// AssertContains fails unless the plain text of frame contains substr.
func (s *Snap) AssertContains(frame, substr string) {
	s.t.Helper()
	if got := Plain(frame); !strings.Contains(got, substr) {
		s.t.Errorf("frame does not contain %q\n%s", substr, got)
	}
}

// AssertNotContains fails if the plain text of frame contains substr.
func (s *Snap) AssertNotContains(frame, substr string) {
	s.t.Helper()
	if got := Plain(frame); strings.Contains(got, substr) {
		s.t.Errorf("frame unexpectedly contains %q\n%s", substr, got)
	}
}

// AssertFits fails if frame is wider or taller than a width x height terminal.
func (s *Snap) AssertFits(frame string, width, height int) {
	s.t.Helper()
	if w := Width(frame); w > width {
		s.t.Errorf("frame is %d cells wide in a %d column terminal\n%s", w, width, Plain(frame))
	}
	if h := Lines(frame); h > height {
		s.t.Errorf("frame is %d lines tall in a %d row terminal\n%s", h, height, Plain(frame))
	}
}

// Plain strips escape codes, CRLF line endings and trailing blanks.
func Plain(frame string) string {
	lines := strings.Split(strings.ReplaceAll(StripANSI(frame), "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes CSI sequences and OSC 8 hyperlinks.
func StripANSI(s string) string {
	return oscRegex.ReplaceAllString(csiRegex.ReplaceAllString(s, ""), "")
}

// Lines counts the rows in frame.
func Lines(frame string) int {
	return strings.Count(frame, "\n") + 1
}

// Width is the widest row of frame, in cells.
func Width(frame string) int {
	widest := 0
	for _, line := range strings.Split(frame, "\n") {
		widest = max(widest, ansi.PrintableRuneWidth(line))
	}
	return widest
}
