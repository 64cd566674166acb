package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// frame renders lines inside a rounded border sized to exactly width x height.
// Too small for a border, the lines are placed bare.
func frame(lines []string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	innerWidth, innerHeight := width-4, height-2
	if innerWidth < 1 || innerHeight < 1 {
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, fitLines(lines, width, height))
	}
	return panelStyle.
		Width(width - 2).
		Height(innerHeight).
		Render(fitLines(lines, innerWidth, innerHeight))
}

// fitLines keeps the first height lines, each truncated to width cells.
func fitLines(lines []string, width, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = truncate.StringWithTail(l, uint(width), ellipsis)
	}
	return strings.Join(out, "\n")
}

// label left-aligns s in a column of width cells.
func label(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// padRight pads an already styled s to width printable cells.
func padRight(s string, width int) string {
	if pad := width - ansi.PrintableRuneWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func panelTitle(s string) string {
	return mainTitle.Render(" " + s + " ")
}
